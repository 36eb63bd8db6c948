package schema

// UserCreate is the POST /api/auth/login body: the identity the front end
// resolved upstream, synced into our users table on first login.
type UserCreate struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	PhotoURL *string `json:"photoUrl"`
}

// UserValues is a validated user create payload.
type UserValues struct {
	Email    string
	Name     string
	PhotoURL *string
}

func (in UserCreate) Validate() (UserValues, error) {
	errs := FieldErrors{}
	var v UserValues

	if in.Email == nil || *in.Email == "" {
		errs["email"] = "email is required"
	} else {
		v.Email = *in.Email
	}
	if in.Name == nil || *in.Name == "" {
		errs["name"] = "name is required"
	} else {
		v.Name = *in.Name
	}
	v.PhotoURL = in.PhotoURL

	if len(errs) > 0 {
		return UserValues{}, errs
	}
	return v, nil
}
