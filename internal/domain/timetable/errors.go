package timetable

import "errors"

var (
	ErrTimetableNotFound = errors.New("timetable not found")
	ErrTimetableInUse    = errors.New("timetable is assigned to employees")
)
