// Template store hides asset details behind an interface, same idea as a
// data-access layer: the service asks for bytes by role and nothing else.
// Templates are compiled into the binary with go:embed, loaded once, and
// only ever handed out as read-only copies, so concurrent requests can
// never observe a partial write.

package repositories

import (
	_ "embed"
	"fmt"

	"github.com/mfluker/aod-onboarding-pdf/models"
)

//go:embed templates/designer.docx
var designerDocx []byte

//go:embed templates/installer.docx
var installerDocx []byte

// TemplateRepository defines the single operation the service layer needs.
// Depending on an interface (not the embed vars) keeps the service testable.
type TemplateRepository interface {
	Template(role models.Role) ([]byte, error)
}

type embeddedTemplateRepo struct{}

// NewTemplateRepository returns the embedded-asset implementation.
func NewTemplateRepository() TemplateRepository {
	return &embeddedTemplateRepo{}
}

// Template returns a copy of the embedded payload for the role.
// Unknown roles should be unreachable behind the closed enum, but we
// still fail with a typed error instead of panicking.
func (r *embeddedTemplateRepo) Template(role models.Role) ([]byte, error) {
	var src []byte
	switch role {
	case models.RoleDesigner:
		src = designerDocx
	case models.RoleInstaller:
		src = installerDocx
	default:
		return nil, fmt.Errorf("%w: no template for role %q", models.ErrTemplateMissing, role)
	}
	// Copy so no caller can mutate the shared embedded slice.
	out := make([]byte, len(src))
	copy(out, src)
	return out, nil
}
