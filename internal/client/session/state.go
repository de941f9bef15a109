package session

import (
	"github.com/dmitrijs2005/passvault/internal/client/models"
	"github.com/dmitrijs2005/passvault/internal/client/services"
)

// State is one screen of the session. The set of states is closed: only
// the types in this file implement it.
type State interface {
	isState()
}

// Items of the Start screen.
const (
	StartLogin = iota
	StartRegister
	StartExit
)

var startItems = []string{"Login", "Register", "Exit"}

// Items of the Menu screen.
const (
	MenuCreate = iota
	MenuSearch
	MenuShowAll
	MenuLogout
)

var menuItems = []string{"Create vault", "Search vault", "Show all vaults", "Logout"}

// Wizard steps shared by the three-step flows.
const (
	StepFirst = iota
	StepSecond
	StepThird
)

// Start is the initial screen.
type Start struct {
	Selected int
}

// Login asks for a username, then a password.
type Login struct {
	Step     int
	Input    Input
	Username string
}

// Register asks for a username, a password and its confirmation.
type Register struct {
	Step     int
	Input    Input
	Username string
	Password string
}

// Menu is the home screen of an authenticated operator.
type Menu struct {
	Selected int
}

// CreateAccount collects account, username and password of a new entry.
type CreateAccount struct {
	Step     int
	Input    Input
	Account  string
	Username string
}

// ListView is a browsable list of entries. Scroll counts display lines,
// header lines included.
type ListView struct {
	Entries     []models.VaultEntry
	Selected    int
	Scroll      int
	ShowHeaders bool
}

// SelectedEntry returns the entry under the cursor.
func (lv ListView) SelectedEntry() (models.VaultEntry, bool) {
	if lv.Selected < 0 || lv.Selected >= len(lv.Entries) {
		return models.VaultEntry{}, false
	}
	return lv.Entries[lv.Selected], true
}

// ShowAllVaults lists entries; ShowPassword reveals the selected secret inline.
type ShowAllVaults struct {
	List         ListView
	ShowPassword bool
}

// ViewVaultDetail shows one decrypted entry. Back is the list screen it was
// opened from, restored unchanged on Esc.
type ViewVaultDetail struct {
	Entry   models.VaultEntry
	Secret  services.SecretResult
	Obscure bool
	Back    ShowAllVaults
}

// EditVault rewrites an entry. Original is the detail screen the wizard was
// started from; its entry holds the (account, username) key of the update.
type EditVault struct {
	Step     int
	Input    Input
	Account  string
	Username string
	Original ViewVaultDetail
}

// SearchVault asks for an account substring.
type SearchVault struct {
	Input Input
}

func (Start) isState()           {}
func (Login) isState()           {}
func (Register) isState()        {}
func (Menu) isState()            {}
func (CreateAccount) isState()   {}
func (ShowAllVaults) isState()   {}
func (ViewVaultDetail) isState() {}
func (EditVault) isState()       {}
func (SearchVault) isState()     {}
