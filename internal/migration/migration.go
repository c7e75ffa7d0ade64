package migration

import (
	"errors"

	cartdomain "github.com/octolab/storefront/internal/cart/domain"
	catalogdomain "github.com/octolab/storefront/internal/catalog/domain"
	contactdomain "github.com/octolab/storefront/internal/contact/domain"
	guidedomain "github.com/octolab/storefront/internal/guide/domain"
	sessiondomain "github.com/octolab/storefront/internal/session/domain"
	"gorm.io/gorm"
)

// RunMigrations creates the schema from the domain models. AutoMigrate keeps
// the service usable out of the box on every supported dialect, including the
// embedded sqlite default.
func RunMigrations(db *gorm.DB) error {
	if db == nil {
		return errors.New("migration database handle is required")
	}

	return db.AutoMigrate(
		&catalogdomain.Product{},
		&guidedomain.Guide{},
		&cartdomain.Cart{},
		&cartdomain.CartLine{},
		&sessiondomain.Session{},
		&contactdomain.Submission{},
	)
}
