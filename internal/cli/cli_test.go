package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const goldenLionSeed = `
locations:
  - name: Golden Lion
    address: 1 High St
    areas:
      - name: Bar
        sections: [Front Bar]
staff:
  - name: Alex
    role: Bartender
    payRate: 30
    locations: [Golden Lion]
rosters:
  - location: Golden Lion
    date: "2026-10-19"
    shifts:
      - role: Bartender
        area: Bar
        section: Front Bar
        staff: Alex
        start: "10:00"
        end: "16:00"
active: Golden Lion
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := RootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestSeedCheck_Valid(t *testing.T) {
	out, err := execute(t, "seed", "check", writeSeed(t, goldenLionSeed))
	require.NoError(t, err)

	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "1 location(s)")
	assert.Contains(t, out, "1 roster(s), 1 shift(s)")
}

func TestSeedCheck_Invalid(t *testing.T) {
	out, err := execute(t, "seed", "check", writeSeed(t, `
locations:
  - name: Golden Lion
    address: 1 High St
    areas:
      - name: Bar
        sections: [Front Bar]
rosters:
  - location: Golden Lion
    date: "2026-10-19"
    shifts:
      - role: Bartender
        area: Bar
        section: Front Bar
        start: "16:00"
        end: "10:00"
`))
	require.Error(t, err)

	assert.Contains(t, out, "is invalid")
	assert.Contains(t, out, "end must be after start")
}

func TestSeedCheck_RequiresFile(t *testing.T) {
	_, err := execute(t, "seed", "check")
	assert.Error(t, err)
}

func TestExport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "timesheet.db")

	out, err := execute(t, "export",
		"--seed", writeSeed(t, goldenLionSeed),
		"--db", dbPath,
		"--from", "2026-10-19",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Exported 2026-10-19 to 2026-10-19")
	assert.Contains(t, out, "1 roster(s), 1 line(s)")
	assert.FileExists(t, dbPath)
}

func TestExport_NeedsSeed(t *testing.T) {
	t.Setenv("SEED_FILE", "")

	_, err := execute(t, "export", "--from", "2026-10-19", "--db", filepath.Join(t.TempDir(), "x.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no seed file")
}
