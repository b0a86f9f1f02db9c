package domain

// Fixed sets the booking form selects from. The court is bookable in twelve
// one-hour windows between 07:00 and 19:00.

var Faculties = []string{
	"Civil",
	"Computer",
	"IT",
	"Architecture",
	"BBA",
	"Electronics",
}

const (
	MinSemester = 1
	MaxSemester = 8
)

var TimeSlots = []string{
	"07:00 - 08:00",
	"08:00 - 09:00",
	"09:00 - 10:00",
	"10:00 - 11:00",
	"11:00 - 12:00",
	"12:00 - 13:00",
	"13:00 - 14:00",
	"14:00 - 15:00",
	"15:00 - 16:00",
	"16:00 - 17:00",
	"17:00 - 18:00",
	"18:00 - 19:00",
}

func IsValidFaculty(f string) bool {
	for _, v := range Faculties {
		if v == f {
			return true
		}
	}
	return false
}

func IsValidSemester(s int) bool {
	return s >= MinSemester && s <= MaxSemester
}

func IsValidTimeSlot(ts string) bool {
	for _, v := range TimeSlots {
		if v == ts {
			return true
		}
	}
	return false
}
