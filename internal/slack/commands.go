package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/shift-roster/internal/domain/entity"
)

type CommandType string

const (
	CmdToday     CommandType = "today"
	CmdDay       CommandType = "day"
	CmdStats     CommandType = "stats"
	CmdLocations CommandType = "locations"
	CmdUse       CommandType = "use"
	CmdStaff     CommandType = "staff"
	CmdUsage     CommandType = "usage"
	CmdHelp      CommandType = "help"
)

// Command is a parsed /roster invocation. Location is the raw location name
// argument; empty means the active location.
type Command struct {
	Type     CommandType
	Date     string
	Location string
	Raw      string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}
	rest := parts[1:]

	switch strings.ToLower(parts[0]) {
	case "today":
		cmd.Type = CmdToday
		cmd.Location = strings.Join(rest, " ")
	case "day", "date":
		cmd.Type = CmdDay
		if err := cmd.takeDate(rest); err != nil {
			return nil, err
		}
	case "stats":
		cmd.Type = CmdStats
		if err := cmd.takeDate(rest); err != nil {
			return nil, err
		}
	case "locations", "locs":
		cmd.Type = CmdLocations
	case "use":
		cmd.Type = CmdUse
		if len(rest) == 0 {
			return nil, fmt.Errorf("please name a location: `/roster use <location>`")
		}
		cmd.Location = strings.Join(rest, " ")
	case "staff":
		cmd.Type = CmdStaff
		cmd.Location = strings.Join(rest, " ")
	case "usage":
		cmd.Type = CmdUsage
		cmd.Location = strings.Join(rest, " ")
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func (c *Command) takeDate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("please give a date: `/roster %s YYYY-MM-DD [location]`", c.Type)
	}
	if _, err := time.Parse(entity.DateLayout, args[0]); err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", args[0])
	}
	c.Date = args[0]
	c.Location = strings.Join(args[1:], " ")
	return nil
}

func GetHelpText() string {
	return `*Available commands:*

*Rosters:*
• ` + "`/roster today [location]`" + ` - Shows today's shifts
• ` + "`/roster day YYYY-MM-DD [location]`" + ` - Shows the shifts of a day
• ` + "`/roster stats YYYY-MM-DD [location]`" + ` - Shows hours and cost of a day

*Locations:*
• ` + "`/roster locations`" + ` - Lists locations
• ` + "`/roster use <location>`" + ` - Sets the active location
• ` + "`/roster usage [location]`" + ` - Shows how many shifts use each area and section

*Staff:*
• ` + "`/roster staff [location]`" + ` - Lists the staff of a location

Without a location the active location is used.`
}
