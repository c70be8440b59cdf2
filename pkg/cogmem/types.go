package cogmem

// Scope determines whether a memory applies to a single project or to all of
// a user's projects. Read operations additionally accept ScopeAll to search
// across both.
type Scope string

const (
	ScopeProject Scope = "project"
	ScopeGlobal  Scope = "global"
	ScopeAll     Scope = "all"
)

// Relationship describes the directed edge type between two linked memories.
type Relationship string

const (
	RelationshipLedTo       Relationship = "led_to"
	RelationshipContradicts Relationship = "contradicts"
	RelationshipExtends     Relationship = "extends"
	RelationshipRelated     Relationship = "related"
)

// Role is a team member's access level on a shared project.
type Role string

const (
	RoleMember Role = "member"
	RoleViewer Role = "viewer"
)

// Service-side defaults. Zero-valued option fields are replaced with these
// before a request is sent, mirroring what the service would assume.
const (
	DefaultMemoryType  = "context"
	DefaultCategory    = "general"
	DefaultImportance  = 5
	DefaultRecallLimit = 10
	DefaultListLimit   = 50
)
