package service

import "github.com/noah-isme/teacher-planner-api/internal/models"

// Pure snapshot transforms. Each returns a fresh top-level slice and never
// writes into its input, so earlier snapshots stay valid for readers that
// still hold them. A missing target yields a value-equal copy.

func assignSlot(schedule models.Schedule, day models.DayOfWeek, period int, className string) models.Schedule {
	next := make(models.Schedule, len(schedule))
	copy(next, schedule)
	for i, slot := range next {
		if slot.Day == day && slot.Period == period {
			next[i].ClassName = className
			break
		}
	}
	return next
}

func appendClass(classes models.Classes, class models.ClassGroup) models.Classes {
	next := make(models.Classes, 0, len(classes)+1)
	next = append(next, classes...)
	return append(next, class)
}

func removeClass(classes models.Classes, id string) (models.Classes, string) {
	next := make(models.Classes, 0, len(classes))
	var name string
	for _, cls := range classes {
		if cls.ID == id {
			name = cls.Name
			continue
		}
		next = append(next, cls)
	}
	return next, name
}

// editStudents rewrites the roster of classID through fn.
func editStudents(classes models.Classes, classID string, fn func([]models.Student) []models.Student) models.Classes {
	next := make(models.Classes, len(classes))
	copy(next, classes)
	for i, cls := range next {
		if cls.ID == classID {
			next[i].Students = fn(cls.Students)
		}
	}
	return next
}

func appendStudents(classes models.Classes, classID string, students ...models.Student) models.Classes {
	return editStudents(classes, classID, func(current []models.Student) []models.Student {
		out := make([]models.Student, 0, len(current)+len(students))
		out = append(out, current...)
		return append(out, students...)
	})
}

func removeStudent(classes models.Classes, classID, studentID string) models.Classes {
	return editStudents(classes, classID, func(current []models.Student) []models.Student {
		out := make([]models.Student, 0, len(current))
		for _, s := range current {
			if s.ID != studentID {
				out = append(out, s)
			}
		}
		return out
	})
}

func replaceStudent(classes models.Classes, classID string, student models.Student) models.Classes {
	return editStudents(classes, classID, func(current []models.Student) []models.Student {
		out := make([]models.Student, len(current))
		copy(out, current)
		for i, s := range out {
			if s.ID == student.ID {
				out[i] = student
			}
		}
		return out
	})
}

func appendTask(tasks models.Tasks, task models.Task) models.Tasks {
	next := make(models.Tasks, 0, len(tasks)+1)
	next = append(next, tasks...)
	return append(next, task)
}

func toggleTask(tasks models.Tasks, id string) models.Tasks {
	next := make(models.Tasks, len(tasks))
	copy(next, tasks)
	for i, t := range next {
		if t.ID == id {
			next[i].Completed = !t.Completed
		}
	}
	return next
}

func removeTask(tasks models.Tasks, id string) models.Tasks {
	next := make(models.Tasks, 0, len(tasks))
	for _, t := range tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	return next
}
