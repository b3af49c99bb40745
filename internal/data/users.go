// ABOUTME: User operations: coach bootstrap, auth, registration, updates.
// ABOUTME: Deleting a user cascades to the athlete profile and alerts.
package data

import (
	"github.com/harperreed/contratempo/internal/models"
	"github.com/harperreed/contratempo/internal/storage"
)

// Bootstrap coach account, created once if no coach exists.
var bootstrapCoach = models.User{
	ID:       "coach_1",
	Username: "coach",
	Password: "coach123",
	Name:     "Coach Adriano",
	Role:     models.RoleCoach,
	Email:    "coach@contratempo.com",
}

// InitializeCoach inserts the bootstrap coach account if no user has the
// coach role. Idempotent across repeated startups.
func (m *Manager) InitializeCoach() error {
	users, err := m.Users()
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Role == models.RoleCoach {
			return nil
		}
	}
	users = append(users, bootstrapCoach)
	return m.saveUsers(users)
}

// Users returns all user accounts.
func (m *Manager) Users() ([]models.User, error) {
	var users []models.User
	if err := m.loadCollection(storage.UsersKey, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (m *Manager) saveUsers(users []models.User) error {
	return m.saveCollection(storage.UsersKey, users)
}

// Athletes returns the users with role athlete.
func (m *Manager) Athletes() ([]models.User, error) {
	users, err := m.Users()
	if err != nil {
		return nil, err
	}
	var athletes []models.User
	for _, u := range users {
		if u.Role == models.RoleAthlete {
			athletes = append(athletes, u)
		}
	}
	return athletes, nil
}

// Authenticate returns the first user matching both username and password
// exactly, or nil when none matches. Comparison is plaintext; the stored
// schema has no password hashing.
func (m *Manager) Authenticate(username, password string) (*models.User, error) {
	users, err := m.Users()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username && users[i].Password == password {
			return &users[i], nil
		}
	}
	return nil, nil
}

// RegisterAthlete creates an athlete account plus its default training
// profile. The caller is responsible for pre-checking username uniqueness;
// registration does not re-check.
func (m *Manager) RegisterAthlete(username, password, name, email, phone string) (*models.User, error) {
	users, err := m.Users()
	if err != nil {
		return nil, err
	}

	user := models.NewAthleteUser(username, password, name, email, phone)
	users = append(users, *user)
	if err := m.saveUsers(users); err != nil {
		return nil, err
	}

	if err := m.SaveAthleteData(models.DefaultAthleteData(user.ID)); err != nil {
		return nil, err
	}

	return user, nil
}

// UserUpdate carries the fields UpdateUser may merge. Nil fields are
// left untouched.
type UserUpdate struct {
	Username *string
	Password *string
	Name     *string
	Email    *string
	Phone    *string
}

// UpdateUser merges the given fields into the user record and persists
// it. Returns nil when the id is unknown.
func (m *Manager) UpdateUser(id string, update UserUpdate) (*models.User, error) {
	users, err := m.Users()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].ID != id {
			continue
		}
		if update.Username != nil {
			users[i].Username = *update.Username
		}
		if update.Password != nil {
			users[i].Password = *update.Password
		}
		if update.Name != nil {
			users[i].Name = *update.Name
		}
		if update.Email != nil {
			users[i].Email = *update.Email
		}
		if update.Phone != nil {
			users[i].Phone = *update.Phone
		}
		if err := m.saveUsers(users); err != nil {
			return nil, err
		}
		return &users[i], nil
	}

	return nil, nil
}

// DeleteUser removes the user, their athlete profile, and every alert
// addressed to them. Three separate collection writes; see Manager's note
// on cascades.
func (m *Manager) DeleteUser(id string) error {
	users, err := m.Users()
	if err != nil {
		return err
	}
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	if err := m.saveUsers(kept); err != nil {
		return err
	}

	athletes, err := m.allAthleteData()
	if err != nil {
		return err
	}
	keptAthletes := athletes[:0]
	for _, a := range athletes {
		if a.UserID != id {
			keptAthletes = append(keptAthletes, a)
		}
	}
	if err := m.saveAthletes(keptAthletes); err != nil {
		return err
	}

	alerts, err := m.Alerts()
	if err != nil {
		return err
	}
	keptAlerts := alerts[:0]
	for _, a := range alerts {
		if a.AthleteID != id {
			keptAlerts = append(keptAlerts, a)
		}
	}
	return m.saveAlerts(keptAlerts)
}
