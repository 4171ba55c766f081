package domain

import "maps"

// Template is a fixed application blueprint servers are created from.
type Template struct {
	// Title is appended to the owner's first name to form the server name.
	Title string

	Egg           int
	DockerImage   string
	Startup       string
	Environment   map[string]string
	Limits        Limits
	FeatureLimits FeatureLimits
}

// Barotrauma is the dedicated server template provisioned by ptprov.
var Barotrauma = Template{
	Title:       "Barotrauma",
	Egg:         44,
	DockerImage: "ghcr.io/milord-thatonemodder/trusted-seas-barotrauma-pterodactyl:main",
	Startup: `./mod_manager.sh && ./custom_script.sh && export LD_LIBRARY_PATH="$LD_LIBRARY_PATH:$PWD/linux64" && ` +
		`port={{SERVER_PORT}} && ./DedicatedServer -port $port -queryport $(( $port + 1 ))`,
	Environment: map[string]string{
		"SRCDS_APPID": "1026340",
		"AUTO_UPDATE": "1",
	},
	Limits: Limits{
		Memory: 4096,
		Swap:   0,
		Disk:   0,
		IO:     500,
		CPU:    0,
	},
	FeatureLimits: FeatureLimits{
		Databases: 0,
		Backups:   0,
	},
}

// ServerName returns the display name for a server owned by firstName.
func (t Template) ServerName(firstName string) string {
	return firstName + " | " + t.Title
}

// Request builds the creation request for the given owner and allocations.
// The environment map is copied so callers cannot mutate the template.
func (t Template) Request(owner Identity, pair AllocationPair) ServerRequest {
	return ServerRequest{
		Name:          t.ServerName(owner.FirstName),
		User:          owner.UserID,
		Egg:           t.Egg,
		DockerImage:   t.DockerImage,
		Startup:       t.Startup,
		Environment:   maps.Clone(t.Environment),
		Limits:        t.Limits,
		FeatureLimits: t.FeatureLimits,
		Allocation: AllocationBinding{
			Default:    pair.Primary.ID,
			Additional: pair.Secondary.ID,
		},
	}
}
