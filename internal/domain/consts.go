package domain

import "github.com/diegoclair/shift-roster/internal/domain/entity"

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their English names
var WeekdayNames = map[int]string{
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
	Sunday:    "Sunday",
}

// WeekdayNumbers maps weekday numbers as strings to integers
var WeekdayNumbers = map[string]int{
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
	"7": Sunday,
}

// AvailabilityByWeekday maps ISO weekday numbers to staff availability days
var AvailabilityByWeekday = map[int]entity.AvailabilityDay{
	Monday:    entity.Mon,
	Tuesday:   entity.Tue,
	Wednesday: entity.Wed,
	Thursday:  entity.Thu,
	Friday:    entity.Fri,
	Saturday:  entity.Sat,
	Sunday:    entity.Sun,
}

// AllDays is every day of the week in ISO format
var AllDays = []int{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DefaultDigestTime is when the daily digest goes out when none is configured
const DefaultDigestTime = "09:00"
