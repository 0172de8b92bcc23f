package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	ps "github.com/mitchellh/go-ps"

	"habitlink/internal/constants"
	"habitlink/internal/session"
)

type DoctorCmd struct {
	ConfigDir string `help:"Config directory to check." type:"path" default:"~/.config/habitlink"`
}

// Run checks the local environment: keyring, config dir, stored session,
// API reachability, and whether another habitlink instance is running.
func (cmd *DoctorCmd) Run(appCtx *Context) error {
	ok := true

	if session.KeyringAvailable() {
		fmt.Println("✓ OS keyring available")
	} else {
		ok = false
		fmt.Println("✗ OS keyring unavailable; session tokens cannot persist")
	}

	if err := os.MkdirAll(cmd.ConfigDir, 0700); err != nil {
		ok = false
		fmt.Printf("✗ config directory not writable: %v\n", err)
	} else {
		// Unique probe name so concurrent doctor runs never race on cleanup.
		probe := filepath.Join(cmd.ConfigDir, ".doctor-probe-"+uuid.NewString())
		if err := os.WriteFile(probe, []byte("ok"), 0600); err != nil {
			ok = false
			fmt.Printf("✗ config directory not writable: %v\n", err)
		} else {
			os.Remove(probe)
			fmt.Println("✓ config directory writable")
		}
	}

	if _, err := appCtx.Tokens.Token(); err != nil {
		fmt.Println("• no stored session; run 'habitlink login'")
	} else {
		fmt.Println("✓ session token stored")
		ctx, cancel := callCtx()
		profile, err := appCtx.API.MyProfile(ctx)
		cancel()
		if err != nil {
			ok = false
			fmt.Printf("✗ API not reachable or session invalid: %v\n", err)
		} else {
			fmt.Printf("✓ API reachable (signed in as %s)\n", displayUser(profile.FirstName, profile.Username))
		}
	}

	if n, err := runningInstances(); err == nil && n > 1 {
		fmt.Printf("• %d habitlink processes running; concurrent instances share one cache\n", n)
	}

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// runningInstances counts habitlink processes, including this one.
func runningInstances() (int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range procs {
		name := p.Executable()
		if name == constants.AppName || strings.HasPrefix(name, constants.AppName+".") {
			n++
		}
	}
	return n, nil
}
