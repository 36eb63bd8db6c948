package schema

import "time"

// TimeEntryCreate is the POST /api/time-entries body.
type TimeEntryCreate struct {
	TaskID    *int64    `json:"taskId"`
	StartTime DateValue `json:"startTime"`
	EndTime   DateValue `json:"endTime"`
	Duration  *int      `json:"duration"`
}

// TimeEntryValues is a validated time entry create payload.
type TimeEntryValues struct {
	TaskID    int64
	StartTime time.Time
	EndTime   *time.Time
	Duration  *int
}

func (in TimeEntryCreate) Validate() (TimeEntryValues, error) {
	errs := FieldErrors{}
	var v TimeEntryValues

	if in.TaskID == nil || *in.TaskID <= 0 {
		errs["taskId"] = "taskId must be a positive integer"
	} else {
		v.TaskID = *in.TaskID
	}

	switch {
	case !in.StartTime.Present || in.StartTime.Null:
		errs["startTime"] = "startTime is required"
	case !in.StartTime.Valid:
		errs["startTime"] = "startTime is not a valid timestamp"
	default:
		v.StartTime = in.StartTime.Time
	}

	// endTime is optional; null reads as not supplied.
	if in.EndTime.Present && !in.EndTime.Null {
		if !in.EndTime.Valid {
			errs["endTime"] = "endTime is not a valid timestamp"
		} else {
			v.EndTime = in.EndTime.timePtr()
		}
	}

	if in.Duration != nil {
		if *in.Duration < 0 {
			errs["duration"] = "duration must not be negative"
		} else {
			v.Duration = in.Duration
		}
	}

	if len(errs) > 0 {
		return TimeEntryValues{}, errs
	}
	return v, nil
}

// TimeEntryPatch is the PATCH /api/time-entries/:id body.
type TimeEntryPatch struct {
	TaskID    Optional[int64] `json:"taskId"`
	StartTime DateValue       `json:"startTime"`
	EndTime   DateValue       `json:"endTime"`
	Duration  Optional[int]   `json:"duration"`
}

// TimeEntryChanges is a validated partial update. The Set flags distinguish
// "clear the nullable column" (reopening an entry) from "leave it".
type TimeEntryChanges struct {
	TaskID      *int64
	StartTime   *time.Time
	EndTime     *time.Time
	EndTimeSet  bool
	Duration    *int
	DurationSet bool
}

func (in TimeEntryPatch) Validate() (TimeEntryChanges, error) {
	errs := FieldErrors{}
	var ch TimeEntryChanges

	if in.TaskID.Present {
		if in.TaskID.Null || in.TaskID.Value <= 0 {
			errs["taskId"] = "taskId must be a positive integer"
		} else {
			ch.TaskID = in.TaskID.ptr()
		}
	}
	if in.StartTime.Present {
		if !in.StartTime.Valid {
			errs["startTime"] = "startTime is not a valid timestamp"
		} else {
			ch.StartTime = in.StartTime.timePtr()
		}
	}
	if in.EndTime.Present {
		if !in.EndTime.Null && !in.EndTime.Valid {
			errs["endTime"] = "endTime is not a valid timestamp"
		} else {
			ch.EndTimeSet = true
			ch.EndTime = in.EndTime.timePtr()
		}
	}
	// duration is nullable: an explicit null clears it.
	if in.Duration.Present {
		switch {
		case in.Duration.Null:
			ch.DurationSet = true
		case in.Duration.Value < 0:
			errs["duration"] = "duration must not be negative"
		default:
			ch.DurationSet = true
			ch.Duration = in.Duration.ptr()
		}
	}

	if len(errs) > 0 {
		return TimeEntryChanges{}, errs
	}
	return ch, nil
}
