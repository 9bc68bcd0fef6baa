package models

// ClassGroup is a teaching group that exclusively owns its students.
type ClassGroup struct {
	ID       string    `json:"id" validate:"required"`
	Name     string    `json:"name"`
	Students []Student `json:"students" validate:"dive"`
}

// Classes is the ordered roster snapshot.
type Classes []ClassGroup

// Find returns the class with the given id.
func (c Classes) Find(id string) (ClassGroup, bool) {
	for _, cls := range c {
		if cls.ID == id {
			return cls, true
		}
	}
	return ClassGroup{}, false
}
