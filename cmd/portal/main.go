// Command portal is the console front of the MotionMatrix factory portal.
// It drives the same screen, session, and credential-store packages the
// HTTP API uses: home, login, and the admin dashboard, with back/forward
// history and a session that survives restarts.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/motionmatrix/factory-portal/internal/config"
	"github.com/motionmatrix/factory-portal/internal/models"
	"github.com/motionmatrix/factory-portal/internal/models/dto"
	"github.com/motionmatrix/factory-portal/internal/nav"
	"github.com/motionmatrix/factory-portal/internal/session"
	"github.com/motionmatrix/factory-portal/internal/storage"
	"github.com/motionmatrix/factory-portal/internal/storage/memory"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// The console portal only needs the session/transition settings;
		// missing server-side config (JWT secret) is fine here.
		cfg = config.Config{StoreBackend: config.BackendMemory}
	}
	log.SetLevel(log.WarnLevel)

	sessions := session.NewManager(sessionDir(cfg))
	screens := nav.New(sessions, cfg.TransitionDelay())
	defer screens.Close()

	ui := &ui{
		store:    memory.New(),
		sessions: sessions,
		screens:  screens,
		in:       bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	ui.run()
}

func sessionDir(cfg config.Config) string {
	if cfg.SessionDir != "" {
		return cfg.SessionDir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "motionmatrix")
	}
	return "."
}

type ui struct {
	store    storage.AccountStore
	sessions *session.Manager
	screens  *nav.Controller
	in       *bufio.Reader
	out      io.Writer
}

func (u *ui) run() {
	if id := u.sessions.Restore(); !id.IsZero() {
		fmt.Fprintf(u.out, "Welcome back, %s.\n", id.Name)
		u.screens.Navigate(nav.ScreenAdmin)
	}

	for {
		switch u.screens.Current() {
		case nav.ScreenHome:
			if done := u.home(); done {
				return
			}
		case nav.ScreenLogin:
			u.login()
		case nav.ScreenAdmin:
			u.admin()
		}
	}
}

func (u *ui) home() bool {
	fmt.Fprintln(u.out, "\n=== MotionMatrix ===")
	fmt.Fprintln(u.out, "1) Log in")
	fmt.Fprintln(u.out, "2) Forgot password")
	fmt.Fprintln(u.out, "0) Exit")
	fmt.Fprint(u.out, "> ")
	switch u.readLine() {
	case "1":
		u.screens.Navigate(nav.ScreenLogin)
	case "2":
		u.recover()
	case "0":
		return true
	}
	return false
}

func (u *ui) login() {
	fmt.Fprintln(u.out, "\n=== Sign in ===")
	fmt.Fprint(u.out, "Email: ")
	email := u.readLine()
	fmt.Fprint(u.out, "Password: ")
	password := u.readLine()

	req := dto.LoginRequest{Email: email, Password: password}
	if errs := req.Validate(); !errs.Valid() {
		u.printFieldErrors(errs)
		u.screens.Navigate(nav.ScreenHome)
		return
	}

	identity, err := u.store.Authenticate(context.Background(), email, password)
	if err != nil {
		// Same message for every failure mode.
		fmt.Fprintln(u.out, "Invalid email or password.")
		u.screens.Navigate(nav.ScreenHome)
		return
	}

	if !identity.IsAdmin() {
		fmt.Fprintf(u.out, "Welcome, %s. Your %s dashboard is coming soon.\n", identity.Name, identity.Role)
		u.screens.Navigate(nav.ScreenHome)
		return
	}

	if err := u.sessions.Login(identity); err != nil {
		fmt.Fprintln(u.out, "Could not start a session:", err)
		u.screens.Navigate(nav.ScreenHome)
		return
	}
	fmt.Fprintf(u.out, "Signed in as %s.\n", identity.Name)
	u.screens.Navigate(nav.ScreenAdmin)
}

func (u *ui) admin() {
	id, ok := u.sessions.Current()
	if !ok {
		// The controller gates this screen; reaching here anonymous
		// means a stale entry slipped through. Send it home.
		u.screens.Navigate(nav.ScreenHome)
		return
	}

	fmt.Fprintf(u.out, "\n=== Admin dashboard (%s) ===\n", id.Name)
	fmt.Fprintln(u.out, "1) Staff by role")
	fmt.Fprintln(u.out, "2) Add worker")
	fmt.Fprintln(u.out, "3) Add account")
	fmt.Fprintln(u.out, "4) Back")
	fmt.Fprintln(u.out, "0) Log out")
	fmt.Fprint(u.out, "> ")
	switch u.readLine() {
	case "1":
		u.listStaff()
	case "2":
		u.addWorker()
	case "3":
		u.addAccount()
	case "4":
		u.screens.Back()
	case "0":
		if err := u.sessions.Logout(); err != nil {
			log.WithError(err).Warn("logout")
		}
		fmt.Fprintln(u.out, "Logged out.")
		u.screens.Navigate(nav.ScreenHome)
	}
}

func (u *ui) recover() {
	fmt.Fprint(u.out, "Email: ")
	req := dto.RecoverRequest{Email: u.readLine()}
	if errs := req.Validate(); !errs.Valid() {
		u.printFieldErrors(errs)
		return
	}
	// Same answer whether or not the email exists.
	_, _ = u.store.FindByEmail(context.Background(), req.Email)
	fmt.Fprintln(u.out, "If that email is registered, recovery instructions have been sent.")
}

func (u *ui) listStaff() {
	fmt.Fprintf(u.out, "Role (%s, empty for all): ", strings.Join(models.Roles(), ", "))
	role := u.readLine()
	if role != "" && !models.ValidRole(role) {
		fmt.Fprintln(u.out, "Unknown role.")
		return
	}
	accounts, err := u.store.ListByRole(context.Background(), role)
	if err != nil {
		fmt.Fprintln(u.out, "Error:", err)
		return
	}
	for _, acct := range accounts {
		fmt.Fprintf(u.out, "  #%d %-16s %-14s %-10s %s\n", acct.ID, acct.Name, acct.Role, acct.Department, acct.Status)
	}
}

func (u *ui) addWorker() {
	req := dto.CreateWorkerRequest{
		Name:       u.prompt("Name"),
		Phone:      u.prompt("Phone"),
		NationalID: u.prompt("National ID"),
		Department: u.prompt("Department (" + strings.Join(models.WorkerDepartments(), ", ") + ")"),
		Gender:     u.prompt("Gender (" + strings.Join(models.Genders(), ", ") + ")"),
		Status:     u.prompt("Status (" + strings.Join(models.Statuses(), ", ") + ")"),
		JoinDate:   u.prompt("Join date (YYYY-MM-DD)"),
	}
	if errs := req.Validate(); !errs.Valid() {
		u.printFieldErrors(errs)
		return
	}
	// Accepted and discarded; the fixture store has no write path.
	fmt.Fprintln(u.out, "Worker added successfully!")
}

func (u *ui) addAccount() {
	req := dto.CreateAccountRequest{
		Name:            u.prompt("Name"),
		Email:           u.prompt("Email"),
		Phone:           u.prompt("Phone"),
		Role:            u.prompt("Role (" + strings.Join(models.Roles(), ", ") + ")"),
		Department:      u.prompt("Department (" + strings.Join(models.AccountDepartments(), ", ") + ")"),
		Gender:          u.prompt("Gender (" + strings.Join(models.Genders(), ", ") + ")"),
		Status:          u.prompt("Status (" + strings.Join(models.Statuses(), ", ") + ")"),
		Password:        u.prompt("Password"),
		ConfirmPassword: u.prompt("Confirm password"),
	}
	if errs := req.Validate(); !errs.Valid() {
		u.printFieldErrors(errs)
		return
	}
	fmt.Fprintln(u.out, "Account created successfully!")
}

func (u *ui) prompt(label string) string {
	fmt.Fprintf(u.out, "%s: ", label)
	return u.readLine()
}

func (u *ui) readLine() string {
	line, err := u.in.ReadString('\n')
	if err != nil && line == "" {
		return "0"
	}
	return strings.TrimSpace(line)
}

// printFieldErrors surfaces every failing field at once, in field order.
func (u *ui) printFieldErrors(errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for field := range errs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(u.out, "  %s: %s\n", field, errs[field])
	}
}
