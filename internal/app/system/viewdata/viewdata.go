// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/collectam/collectam-web/internal/app/system/session"
	"github.com/collectam/collectam-web/internal/domain/models"
)

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string

	// User context; zero values for anonymous pages.
	IsLoggedIn bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string

	// One-shot notifications drained from the flash store.
	Flashes []session.Flash
}

// NewBaseVM builds the shared view model. user may be nil on pages
// rendered before a session exists.
func NewBaseVM(r *http.Request, title, backURL string, user *models.UserProfile) BaseVM {
	vm := BaseVM{
		SiteName:    "Collectam",
		Title:       title,
		BackURL:     backURL,
		CurrentPath: r.URL.Path,
	}
	if user != nil {
		vm.IsLoggedIn = true
		vm.Role = user.Role
		vm.UserName = user.FullName()
	}
	return vm
}
