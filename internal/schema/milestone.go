package schema

import "time"

// MilestoneCreate is the POST /api/milestones body.
type MilestoneCreate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	TargetDate  DateValue `json:"targetDate"`
	Completed   *bool     `json:"completed"`
}

// MilestoneValues is a validated milestone create payload.
type MilestoneValues struct {
	Title       string
	Description *string
	TargetDate  time.Time
	Completed   bool
}

func (in MilestoneCreate) Validate() (MilestoneValues, error) {
	errs := FieldErrors{}
	var v MilestoneValues

	if in.Title == nil || *in.Title == "" {
		errs["title"] = "title is required"
	} else {
		v.Title = *in.Title
	}

	// targetDate is strict, unlike a task's dueDate: a milestone without a
	// target date is meaningless, so absence and junk are both rejected.
	switch {
	case !in.TargetDate.Present || in.TargetDate.Null:
		errs["targetDate"] = "targetDate is required"
	case !in.TargetDate.Valid:
		errs["targetDate"] = "targetDate is not a valid timestamp"
	default:
		v.TargetDate = in.TargetDate.Time
	}

	v.Description = in.Description
	if in.Completed != nil {
		v.Completed = *in.Completed
	}

	if len(errs) > 0 {
		return MilestoneValues{}, errs
	}
	return v, nil
}

// MilestonePatch is the PATCH /api/milestones/:id body.
type MilestonePatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	TargetDate  DateValue        `json:"targetDate"`
	Completed   Optional[bool]   `json:"completed"`
}

// MilestoneChanges is a validated partial update. TargetDate stays non-nullable
// here too: a patch may move it but never clear it.
type MilestoneChanges struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	TargetDate     *time.Time
	Completed      *bool
}

func (in MilestonePatch) Validate() (MilestoneChanges, error) {
	errs := FieldErrors{}
	var ch MilestoneChanges

	if in.Title.Present {
		if in.Title.Null || in.Title.Value == "" {
			errs["title"] = "title must not be empty"
		} else {
			ch.Title = in.Title.ptr()
		}
	}
	if in.TargetDate.Present {
		switch {
		case in.TargetDate.Null:
			errs["targetDate"] = "targetDate must not be null"
		case !in.TargetDate.Valid:
			errs["targetDate"] = "targetDate is not a valid timestamp"
		default:
			ch.TargetDate = in.TargetDate.timePtr()
		}
	}
	// description is nullable: an explicit null clears it.
	if in.Description.Present {
		ch.DescriptionSet = true
		if !in.Description.Null {
			ch.Description = in.Description.ptr()
		}
	}
	if in.Completed.Present {
		if in.Completed.Null {
			errs["completed"] = "completed must not be null"
		} else {
			ch.Completed = in.Completed.ptr()
		}
	}

	if len(errs) > 0 {
		return MilestoneChanges{}, errs
	}
	return ch, nil
}
