package domain

// ScheduleID names a cron class. Each class has fixed send times.
type ScheduleID string

const (
	ScheduleOnceDaily  ScheduleID = "once-daily"
	ScheduleTwiceDaily ScheduleID = "twice-daily"
)

// Schedule describes the send times of a cron class.
type Schedule struct {
	ID        ScheduleID
	Cron      string
	SendHours []int
}

var schedules = map[ScheduleID]Schedule{
	ScheduleOnceDaily:  {ID: ScheduleOnceDaily, Cron: "0 9 * * *", SendHours: []int{9}},
	ScheduleTwiceDaily: {ID: ScheduleTwiceDaily, Cron: "0 9,17 * * *", SendHours: []int{9, 17}},
}

// LookupSchedule returns the schedule for id.
func LookupSchedule(id ScheduleID) (Schedule, bool) {
	s, ok := schedules[id]
	return s, ok
}

// Valid reports whether id is a known schedule class.
func (id ScheduleID) Valid() bool {
	_, ok := schedules[id]
	return ok
}
