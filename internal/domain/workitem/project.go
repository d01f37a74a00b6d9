package workitem

// Team is a delivery team working on a project.
type Team struct {
	ID    int64
	Name  string
	Email string
}

// Contact returns the team as a notification recipient.
func (t Team) Contact() Collaborator {
	return Collaborator{Name: t.Name, Email: t.Email}
}

// Project owns epics and carries the people notified about its backlog.
type Project struct {
	ID           int64
	Name         string
	ProductOwner Collaborator
	Teams        []Team
}

// Sprint is a time-boxed iteration with its own backlog.
type Sprint struct {
	ID        int64
	Name      string
	ProjectID int64
}
