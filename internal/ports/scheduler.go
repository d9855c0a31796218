package ports

import "time"

// Scheduler runs a job at a fixed interval until the returned cancel func is called.
// The first run happens one interval after registration.
type Scheduler interface {
	Every(name string, interval time.Duration, job func()) (cancel func(), err error)
}
