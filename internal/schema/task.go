package schema

import "time"

// TaskCreate is the POST /api/tasks body.
type TaskCreate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	DueDate     DateValue `json:"dueDate"`
	Completed   *bool     `json:"completed"`
}

// TaskValues is a validated, normalized task create payload.
type TaskValues struct {
	Title       string
	Description *string
	Category    string
	DueDate     *time.Time
	Completed   bool
}

func (in TaskCreate) Validate() (TaskValues, error) {
	errs := FieldErrors{}
	var v TaskValues

	if in.Title == nil || *in.Title == "" {
		errs["title"] = "title is required"
	} else {
		v.Title = *in.Title
	}
	if in.Category == nil || *in.Category == "" {
		errs["category"] = "category is required"
	} else {
		v.Category = *in.Category
	}

	v.Description = in.Description
	// dueDate is lenient: null, empty string and unparsable values all
	// normalize to no due date.
	v.DueDate = in.DueDate.timePtr()
	if in.Completed != nil {
		v.Completed = *in.Completed
	}

	if len(errs) > 0 {
		return TaskValues{}, errs
	}
	return v, nil
}

// TaskPatch is the PATCH /api/tasks/:id body. Every field is optional; only
// fields present in the payload are validated and applied.
type TaskPatch struct {
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Category    Optional[string] `json:"category"`
	DueDate     DateValue        `json:"dueDate"`
	Completed   Optional[bool]   `json:"completed"`
}

// TaskChanges is a validated partial update. Nil pointers mean the field was
// not supplied; the Set flags distinguish "clear the nullable column" from
// "leave it".
type TaskChanges struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Category       *string
	DueDate        *time.Time
	DueDateSet     bool
	Completed      *bool
}

func (in TaskPatch) Validate() (TaskChanges, error) {
	errs := FieldErrors{}
	var ch TaskChanges

	if in.Title.Present {
		if in.Title.Null || in.Title.Value == "" {
			errs["title"] = "title must not be empty"
		} else {
			ch.Title = in.Title.ptr()
		}
	}
	if in.Category.Present {
		if in.Category.Null || in.Category.Value == "" {
			errs["category"] = "category must not be empty"
		} else {
			ch.Category = in.Category.ptr()
		}
	}
	// description is nullable: an explicit null clears it.
	if in.Description.Present {
		ch.DescriptionSet = true
		if !in.Description.Null {
			ch.Description = in.Description.ptr()
		}
	}
	if in.DueDate.Present {
		ch.DueDateSet = true
		ch.DueDate = in.DueDate.timePtr()
	}
	if in.Completed.Present {
		if in.Completed.Null {
			errs["completed"] = "completed must not be null"
		} else {
			ch.Completed = in.Completed.ptr()
		}
	}

	if len(errs) > 0 {
		return TaskChanges{}, errs
	}
	return ch, nil
}
