package core

// Mutex is the lock a logger uses to serialize access to a shared
// message buffer. *sync.Mutex satisfies it. Only Lock and Unlock are
// called, always in matched pairs.
type Mutex interface {
	Lock()
	TryLock() bool
	Unlock()
}
