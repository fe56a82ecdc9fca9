package repository

import (
	"database/sql"
	"errors"

	"github.com/CryptoXApp/CryptoX_Api.git/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrUserNotFound = errors.New("usuario no encontrado")

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO users (id, email, password, display_name, vs_currency)
		VALUES (?, ?, ?, ?, ?)`

	if user.VsCurrency == "" {
		user.VsCurrency = models.DefaultCurrency
	}

	_, err := r.db.Exec(query, user.ID, user.Email, user.Password, user.DisplayName, user.VsCurrency)
	return err
}

func (r *UserRepository) GetAllUsers() ([]models.User, error) {
	users := []models.User{}
	query := `SELECT id, email, display_name, vs_currency, created_at FROM users`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Email,
			&user.DisplayName,
			&user.VsCurrency,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *UserRepository) GetUserById(id string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, display_name, vs_currency, created_at FROM users WHERE id = ?`

	err := r.db.QueryRow(query, id).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.VsCurrency,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, display_name, vs_currency, created_at FROM users WHERE email = ?`

	err := r.db.QueryRow(query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.DisplayName,
		&user.VsCurrency,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) GetUserByDisplayName(displayName string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, display_name, vs_currency, created_at FROM users WHERE display_name = ?`

	err := r.db.QueryRow(query, displayName).Scan(
		&user.ID,
		&user.Email,
		&user.DisplayName,
		&user.VsCurrency,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *UserRepository) UpdateUser(user *models.User) error {
	query := `
		UPDATE users
		SET email = ?, display_name = ?
		WHERE id = ?`

	_, err := r.db.Exec(query, user.Email, user.DisplayName, user.ID)
	return err
}

// UpdateCurrency guarda la moneda de visualización preferida del usuario.
func (r *UserRepository) UpdateCurrency(userID, vsCurrency string) error {
	query := `UPDATE users SET vs_currency = ? WHERE id = ?`

	_, err := r.db.Exec(query, vsCurrency, userID)
	return err
}

func (r *UserRepository) DeleteUser(id string) error {
	query := `DELETE FROM users WHERE id = ?`

	_, err := r.db.Exec(query, id)
	return err
}

func (r *UserRepository) UpdatePassword(email, password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	query := `UPDATE users SET password = ? WHERE email = ?`

	_, err = r.db.Exec(query, string(hashedPassword), email)
	return err
}
