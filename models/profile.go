package models

// UserProfile is the styling profile the advisory persona is personalized
// with. Free-text fields, filled in by the user over time.
type UserProfile struct {
	Name      string `json:"name" bson:"name"`
	Height    string `json:"height" bson:"height"`
	Weight    string `json:"weight" bson:"weight"`
	Age       string `json:"age" bson:"age"`
	SkinType  string `json:"skinType" bson:"skinType"`
	HairStyle string `json:"hairStyle" bson:"hairStyle"`
	Concerns  string `json:"concerns" bson:"concerns"`
}

// ProfileUpdate carries a partial profile edit. Nil fields keep their
// prior value (merge semantics).
type ProfileUpdate struct {
	Name      *string `json:"name,omitempty"`
	Height    *string `json:"height,omitempty"`
	Weight    *string `json:"weight,omitempty"`
	Age       *string `json:"age,omitempty"`
	SkinType  *string `json:"skinType,omitempty"`
	HairStyle *string `json:"hairStyle,omitempty"`
	Concerns  *string `json:"concerns,omitempty"`
}

// Apply merges the update into the profile and returns the result.
func (u ProfileUpdate) Apply(p UserProfile) UserProfile {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Height != nil {
		p.Height = *u.Height
	}
	if u.Weight != nil {
		p.Weight = *u.Weight
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.SkinType != nil {
		p.SkinType = *u.SkinType
	}
	if u.HairStyle != nil {
		p.HairStyle = *u.HairStyle
	}
	if u.Concerns != nil {
		p.Concerns = *u.Concerns
	}
	return p
}
