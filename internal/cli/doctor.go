// internal/cli/doctor.go
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/grbtools/grblocate/pkg/gurobi"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the Gurobi installation",
	Long: `Run every location check and report the outcome of each one, instead of
stopping at the first failure like directive emission does.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// check is one diagnosed step of the location pipeline.
type check struct {
	name   string
	ok     bool
	ran    bool
	detail string
}

func runDoctor(cmd *cobra.Command, args []string) error {
	checks := runChecks()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Check", "Status", "Detail"})

	failed := 0
	for _, c := range checks {
		status := text.FgGreen.Sprint("OK")
		if !c.ran {
			status = "SKIPPED"
		} else if !c.ok {
			status = text.FgRed.Sprint("FAIL")
			failed++
		}
		t.AppendRow(table.Row{c.name, status, c.detail})
	}
	t.Render()

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(checks))
	}

	fmt.Println(text.FgGreen.Sprint("\nInstallation looks ready to link."))
	return nil
}

// runChecks walks the pipeline stage by stage. A failed stage marks the
// remaining stages as skipped since their inputs are unavailable.
func runChecks() []check {
	locator := gurobi.NewLocator(&gurobi.Options{
		Home:  config.Home,
		Debug: config.Debug,
	})

	homeCheck := check{name: "Installation root", ran: true}
	probeCheck := check{name: "Probe executable (bin/" + gurobi.ProbeExecutable() + ")"}
	versionCheck := check{name: "Version banner"}
	libCheck := check{name: "Shared library in lib/"}

	home, err := locator.Home()
	if err != nil {
		homeCheck.detail = err.Error()
		return []check{homeCheck, probeCheck, versionCheck, libCheck}
	}
	homeCheck.ok = true
	homeCheck.detail = home

	probeCheck.ran = true
	versionCheck.ran = true
	version, err := gurobi.NewProber(nil).Probe(home)
	switch {
	case errors.Is(err, gurobi.ErrProbeNotFound):
		probeCheck.detail = err.Error()
		versionCheck.ran = false
		return []check{homeCheck, probeCheck, versionCheck, libCheck}
	case err != nil:
		probeCheck.ok = true
		versionCheck.detail = err.Error()
		return []check{homeCheck, probeCheck, versionCheck, libCheck}
	}
	probeCheck.ok = true
	versionCheck.ok = true
	versionCheck.detail = version.String()

	libCheck.ran = true
	library := version.Library()
	if gurobi.HasLibrary(home, library) {
		libCheck.ok = true
		libCheck.detail = library
	} else {
		libCheck.detail = "lib" + library + " not found under " + home
	}

	return []check{homeCheck, probeCheck, versionCheck, libCheck}
}
