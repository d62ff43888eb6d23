package models

import "time"

// Task представляет одну задачу todo-списка.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	DueDate   string `json:"due_date,omitempty"` // DueDate дата в формате YYYY-MM-DD
	Notes     string `json:"notes,omitempty"`
	Completed bool   `json:"completed"`
}

// Project именованный список задач. Порядок проектов задаётся пользователем.
type Project struct {
	Name  string `json:"name"`
	Tasks []Task `json:"tasks"`
}

// TodoCollection снимок todo-коллекции: inbox, проекты и архив.
// Сама коллекция принадлежит todo-модулю, синхронизация только читает снимок.
type TodoCollection struct {
	UpdatedAt time.Time `json:"updated_at"`
	Inbox     []Task    `json:"inbox"`
	Projects  []Project `json:"projects"`
	Archive   []Task    `json:"archive"`
	// Sync метаданные синхронизации агрегата (аналог полей Document)
	Sync *SyncState `json:"sync,omitempty"`
}

// Project возвращает проект по имени или nil
func (c *TodoCollection) Project(name string) *Project {
	for i := range c.Projects {
		if c.Projects[i].Name == name {
			return &c.Projects[i]
		}
	}
	return nil
}

// Len возвращает общее количество задач во всех списках.
func (c *TodoCollection) Len() int {
	n := len(c.Inbox) + len(c.Archive)
	for _, p := range c.Projects {
		n += len(p.Tasks)
	}
	return n
}

// Add добавляет задачу в inbox или в проект (проект создаётся при необходимости).
func (c *TodoCollection) Add(project string, task Task, at time.Time) {
	if project == "" {
		c.Inbox = append(c.Inbox, task)
	} else if p := c.Project(project); p != nil {
		p.Tasks = append(p.Tasks, task)
	} else {
		c.Projects = append(c.Projects, Project{Name: project, Tasks: []Task{task}})
	}
	c.UpdatedAt = at
}

// Complete отмечает задачу выполненной и переносит её в архив.
// false, если активной задачи с таким id нет.
func (c *TodoCollection) Complete(id string, at time.Time) bool {
	take := func(tasks []Task) ([]Task, bool) {
		for i, t := range tasks {
			if t.ID == id {
				t.Completed = true
				c.Archive = append(c.Archive, t)
				return append(tasks[:i], tasks[i+1:]...), true
			}
		}
		return tasks, false
	}

	var ok bool
	if c.Inbox, ok = take(c.Inbox); !ok {
		for i := range c.Projects {
			if c.Projects[i].Tasks, ok = take(c.Projects[i].Tasks); ok {
				break
			}
		}
	}
	if ok {
		c.UpdatedAt = at
	}
	return ok
}
