package domain

// Server is the panel's view of a newly created server.
type Server struct {
	ID         int    `json:"id"`
	UUID       string `json:"uuid,omitempty"`
	Identifier string `json:"identifier,omitempty"`
	Name       string `json:"name"`
	UserID     int    `json:"user"`
	NodeID     int    `json:"node,omitempty"`
}

// ServerRequest is the body of a server creation request.
type ServerRequest struct {
	Name          string            `json:"name"`
	User          int               `json:"user"`
	Egg           int               `json:"egg"`
	DockerImage   string            `json:"docker_image"`
	Startup       string            `json:"startup"`
	Environment   map[string]string `json:"environment"`
	Limits        Limits            `json:"limits"`
	FeatureLimits FeatureLimits     `json:"feature_limits"`
	Allocation    AllocationBinding `json:"allocation"`
}

// Limits are the resource limits applied to a server.
type Limits struct {
	Memory int `json:"memory"`
	Swap   int `json:"swap"`
	Disk   int `json:"disk"`
	IO     int `json:"io"`
	CPU    int `json:"cpu"`
}

// FeatureLimits cap the number of databases and backups a server may own.
type FeatureLimits struct {
	Databases int `json:"databases"`
	Backups   int `json:"backups"`
}

// AllocationBinding names the allocation IDs a server listens on.
type AllocationBinding struct {
	Default    int `json:"default"`
	Additional int `json:"additional"`
}
