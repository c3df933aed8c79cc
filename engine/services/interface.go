package services

// Service defines the lifecycle interface for process-level subsystems
// Services own long-lived resources: the terminal screen, the audio device
//
// Lifecycle:
//  1. Construction
//  2. Init() - acquire resources, in dependency order
//  3. Start() - launch background work, after every service initialized
//  4. Stop() - release resources, reverse order; must be idempotent
type Service interface {
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error
	Stop() error
}
