// DTOs for the onboarding flow + the role enum.

package models

// Role selects which embedded template a request uses.
// Closed set: the form only offers these two values and Gin's oneof
// binding rejects anything else before the service runs.
type Role string

const (
	RoleDesigner  Role = "designer"
	RoleInstaller Role = "installer"
)

// GenerateRequest is the payload for the generate and preview endpoints.
// Gin binding tags validate shape; the service re-checks name content
// (whitespace-only names pass "required" but are still invalid).
type GenerateRequest struct {
	Role      Role   `form:"role" json:"role" binding:"required,oneof=designer installer"`
	FirstName string `form:"first_name" json:"first_name" binding:"required"`
	LastName  string `form:"last_name" json:"last_name" binding:"required"`
}

// Identity holds the three strings derived from a raw first/last name.
// Pure function of the input; computed once per request and never mutated.
type Identity struct {
	Greeting   string // Title-cased first name + trailing comma, e.g. "Mary-Jane,"
	EmailLocal string // first initial + last name, lowercase alphanumerics only
	Username   string // first.last, each side lowercase alphanumerics only
}

// Artifact is the downloadable result of a successful generation.
// Lifecycle ends at download; nothing is persisted.
type Artifact struct {
	Filename string // e.g. "designer-anna_smith-onboarding.pdf"
	Bytes    []byte // the converted PDF
}

// Preview echoes the derived values without running the converter,
// so the form can show email/username before the download.
type Preview struct {
	Greeting string `json:"greeting"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Filename string `json:"filename"`
}
