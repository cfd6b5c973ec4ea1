package ecs

// System is a unit of per-frame behavior. Exported Query and Singleton fields
// are bound to the storage when the system is registered with a Scheduler;
// any other fields are private state that survives between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
