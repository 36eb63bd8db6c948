package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func decode[T any](t *testing.T, body string) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal([]byte(body), &v))
	return v
}

func TestTaskCreateValid(t *testing.T) {
	in := decode[TaskCreate](t, `{"title":"Write report","category":"Coding","dueDate":"2025-03-01T10:00:00Z"}`)
	v, err := in.Validate()
	require.NoError(t, err)
	require.Equal(t, "Write report", v.Title)
	require.Equal(t, "Coding", v.Category)
	require.False(t, v.Completed)
	require.NotNil(t, v.DueDate)
	require.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), v.DueDate.UTC())
}

func TestTaskCreateDueDateCoercion(t *testing.T) {
	cases := map[string]string{
		"null":       `{"title":"t","category":"c","dueDate":null}`,
		"empty":      `{"title":"t","category":"c","dueDate":""}`,
		"absent":     `{"title":"t","category":"c"}`,
		"unparsable": `{"title":"t","category":"c","dueDate":"not a date"}`,
		"wrong type": `{"title":"t","category":"c","dueDate":12345}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			in := decode[TaskCreate](t, body)
			v, err := in.Validate()
			require.NoError(t, err)
			require.Nil(t, v.DueDate)
		})
	}
}

func TestTaskCreateShortDateForms(t *testing.T) {
	in := decode[TaskCreate](t, `{"title":"t","category":"c","dueDate":"2025-03-01"}`)
	v, err := in.Validate()
	require.NoError(t, err)
	require.NotNil(t, v.DueDate)
}

func TestTaskCreateMissingRequired(t *testing.T) {
	in := decode[TaskCreate](t, `{"title":"","description":"d"}`)
	_, err := in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "title")
	require.Contains(t, fields, "category")
	require.NotContains(t, fields, "description")
}

func TestTaskPatchOnlyPresentFields(t *testing.T) {
	in := decode[TaskPatch](t, `{"completed":true}`)
	ch, err := in.Validate()
	require.NoError(t, err)
	require.Nil(t, ch.Title)
	require.Nil(t, ch.Category)
	require.False(t, ch.DueDateSet)
	require.NotNil(t, ch.Completed)
	require.True(t, *ch.Completed)
}

func TestTaskPatchClearDueDate(t *testing.T) {
	in := decode[TaskPatch](t, `{"dueDate":null}`)
	ch, err := in.Validate()
	require.NoError(t, err)
	require.True(t, ch.DueDateSet)
	require.Nil(t, ch.DueDate)
}

func TestTaskPatchEmptyTitleRejected(t *testing.T) {
	in := decode[TaskPatch](t, `{"title":""}`)
	_, err := in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "title")
}

func TestTaskPatchNullScalarsRejected(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"null title":     {`{"title":null}`, "title"},
		"null category":  {`{"category":null}`, "category"},
		"null completed": {`{"completed":null}`, "completed"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := decode[TaskPatch](t, tc.body)
			_, err := in.Validate()
			var fields FieldErrors
			require.ErrorAs(t, err, &fields)
			require.Contains(t, fields, tc.field)
		})
	}
}

func TestTaskPatchClearDescription(t *testing.T) {
	in := decode[TaskPatch](t, `{"description":null}`)
	ch, err := in.Validate()
	require.NoError(t, err)
	require.True(t, ch.DescriptionSet)
	require.Nil(t, ch.Description)

	// Absent description stays untouched.
	in = decode[TaskPatch](t, `{"completed":true}`)
	ch, err = in.Validate()
	require.NoError(t, err)
	require.False(t, ch.DescriptionSet)
}

func TestTimeEntryCreate(t *testing.T) {
	in := decode[TimeEntryCreate](t, `{"taskId":3,"startTime":"2025-03-01T09:00:00Z","duration":25}`)
	v, err := in.Validate()
	require.NoError(t, err)
	require.Equal(t, int64(3), v.TaskID)
	require.Nil(t, v.EndTime)
	require.NotNil(t, v.Duration)
	require.Equal(t, 25, *v.Duration)
}

func TestTimeEntryCreateRejects(t *testing.T) {
	cases := map[string]struct {
		body  string
		field string
	}{
		"missing taskId":      {`{"startTime":"2025-03-01T09:00:00Z"}`, "taskId"},
		"non-positive taskId": {`{"taskId":0,"startTime":"2025-03-01T09:00:00Z"}`, "taskId"},
		"missing startTime":   {`{"taskId":1}`, "startTime"},
		"bad startTime":       {`{"taskId":1,"startTime":"yesterday"}`, "startTime"},
		"negative duration":   {`{"taskId":1,"startTime":"2025-03-01T09:00:00Z","duration":-5}`, "duration"},
		"bad endTime":         {`{"taskId":1,"startTime":"2025-03-01T09:00:00Z","endTime":"later"}`, "endTime"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := decode[TimeEntryCreate](t, tc.body)
			_, err := in.Validate()
			var fields FieldErrors
			require.ErrorAs(t, err, &fields)
			require.Contains(t, fields, tc.field)
		})
	}
}

func TestTimeEntryPatchClearEndTime(t *testing.T) {
	in := decode[TimeEntryPatch](t, `{"endTime":null}`)
	ch, err := in.Validate()
	require.NoError(t, err)
	require.True(t, ch.EndTimeSet)
	require.Nil(t, ch.EndTime)
}

func TestTimeEntryPatchClearDuration(t *testing.T) {
	in := decode[TimeEntryPatch](t, `{"duration":null}`)
	ch, err := in.Validate()
	require.NoError(t, err)
	require.True(t, ch.DurationSet)
	require.Nil(t, ch.Duration)
}

func TestTimeEntryPatchNullTaskIDRejected(t *testing.T) {
	in := decode[TimeEntryPatch](t, `{"taskId":null}`)
	_, err := in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "taskId")
}

func TestMilestoneCreateTargetDateStrict(t *testing.T) {
	cases := map[string]string{
		"absent":     `{"title":"Launch"}`,
		"null":       `{"title":"Launch","targetDate":null}`,
		"empty":      `{"title":"Launch","targetDate":""}`,
		"unparsable": `{"title":"Launch","targetDate":"soon"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			in := decode[MilestoneCreate](t, body)
			_, err := in.Validate()
			var fields FieldErrors
			require.ErrorAs(t, err, &fields)
			require.Contains(t, fields, "targetDate")
		})
	}
}

func TestMilestoneCreateValid(t *testing.T) {
	in := decode[MilestoneCreate](t, `{"title":"Launch","targetDate":"2025-06-01T00:00:00Z","completed":true}`)
	v, err := in.Validate()
	require.NoError(t, err)
	require.Equal(t, "Launch", v.Title)
	require.True(t, v.Completed)
	require.False(t, v.TargetDate.IsZero())
}

func TestMilestonePatchTargetDateNotNullable(t *testing.T) {
	in := decode[MilestonePatch](t, `{"targetDate":null}`)
	_, err := in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "targetDate")
}

func TestMilestonePatchNullScalarsRejected(t *testing.T) {
	in := decode[MilestonePatch](t, `{"title":null,"completed":null}`)
	_, err := in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "title")
	require.Contains(t, fields, "completed")
}

func TestUserCreate(t *testing.T) {
	in := decode[UserCreate](t, `{"email":"a@b.c","name":"A"}`)
	v, err := in.Validate()
	require.NoError(t, err)
	require.Equal(t, "a@b.c", v.Email)

	in = decode[UserCreate](t, `{"name":"A"}`)
	_, err = in.Validate()
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Contains(t, fields, "email")
}

func TestFieldErrorsMessage(t *testing.T) {
	err := FieldErrors{"b": "bad", "a": "missing"}
	require.Equal(t, "a: missing; b: bad", err.Error())
}
