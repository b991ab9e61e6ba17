package ingest

import (
	"path/filepath"

	"campuscard/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Security answer hashing
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/clause"        // Upsert clauses
)

// Timestamp layouts per source table. events.csv uses a slash-delimited
// month/day/year format, transaction.csv uses ISO-8601 with either a "T"
// or a space separator.
const (
	eventTimeLayout = "1/2/2006 15:04"
	isoTimeLayout   = "2006-01-02T15:04:05"
	isoSpaceLayout  = "2006-01-02 15:04:05"
)

// Loader populates the relational schema from a directory of CSV files.
// The whole run is wrapped in a single transaction: any malformed row,
// missing file or storage error rolls back every table load.
type Loader struct {
	db      *gorm.DB
	dataDir string
}

// New creates a Loader reading CSVs from dataDir and writing through db
func New(db *gorm.DB, dataDir string) *Loader {
	return &Loader{db: db, dataDir: dataDir}
}

func (l *Loader) path(name string) string {
	return filepath.Join(l.dataDir, name)
}

// Run loads every table in foreign-key dependency order inside one
// all-or-nothing transaction.
func (l *Loader) Run() error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		// Load independent tables first
		if err := l.loadSchools(tx); err != nil {
			return err
		}
		if err := l.loadWallets(tx); err != nil {
			return err
		}
		if err := l.loadSecurityQuestions(tx); err != nil {
			return err
		}
		if err := l.loadEvents(tx); err != nil {
			return err
		}
		// Then tables that depend on those (via FKs)
		if err := l.loadUsers(tx); err != nil {
			return err
		}
		if err := l.loadUserProfiles(tx); err != nil {
			return err
		}
		if err := l.loadTransactions(tx); err != nil {
			return err
		}
		return l.loadUserSecurityAnswers(tx)
	})
}

// upsert inserts the record or updates it in place when the primary key
// already exists.
func upsert(tx *gorm.DB, obj any) error {
	return tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(obj).Error
}

func (l *Loader) loadSchools(tx *gorm.DB) error {
	rows, err := readRows(l.path("schools.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.uintField("id")
		if err != nil {
			return err
		}
		// Header really is "school name" with a space in the source data
		name, err := r.get("school name")
		if err != nil {
			return err
		}
		if err := upsert(tx, &domain.School{ID: id, SchoolName: name}); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded schools")
	return nil
}

func (l *Loader) loadWallets(tx *gorm.DB) error {
	rows, err := readRows(l.path("wallets.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.uintField("id")
		if err != nil {
			return err
		}
		balance, err := r.decimalField("balance")
		if err != nil {
			return err
		}
		limit, err := r.decimalField("credit_limit")
		if err != nil {
			return err
		}
		score, err := r.intField("credit_score")
		if err != nil {
			return err
		}
		w := domain.Wallet{ID: id, Balance: balance, CreditLimit: &limit, CreditScore: score}
		if err := upsert(tx, &w); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded wallets")
	return nil
}

func (l *Loader) loadSecurityQuestions(tx *gorm.DB) error {
	rows, err := readRows(l.path("security_questions.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.uintField("id")
		if err != nil {
			return err
		}
		question, err := r.get("question")
		if err != nil {
			return err
		}
		if err := upsert(tx, &domain.SecurityQuestion{ID: id, Question: question}); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded security questions")
	return nil
}

func (l *Loader) loadEvents(tx *gorm.DB) error {
	rows, err := readRows(l.path("events.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.uintField("event_id")
		if err != nil {
			return err
		}
		name, err := r.get("name")
		if err != nil {
			return err
		}
		category, err := r.get("category")
		if err != nil {
			return err
		}
		volunteering, err := r.boolField("is_volunteering")
		if err != nil {
			return err
		}
		location, err := r.get("location")
		if err != nil {
			return err
		}
		// CSV format example: "11/5/2025 17:00"
		start, err := r.timeField("start_time", eventTimeLayout)
		if err != nil {
			return err
		}
		cost, err := r.decimalField("cost")
		if err != nil {
			return err
		}
		hours, err := r.intField("volunteering_hours")
		if err != nil {
			return err
		}
		e := domain.Event{
			ID:                id,
			Name:              name,
			Category:          category,
			IsVolunteering:    volunteering,
			Location:          location,
			StartTime:         start,
			Cost:              cost,
			VolunteeringHours: hours,
		}
		if err := upsert(tx, &e); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded events")
	return nil
}

// loadUsers always inserts fresh rows. Unlike every other table there is
// no upsert here, so re-running ingestion duplicates users.
func (l *Loader) loadUsers(tx *gorm.DB) error {
	rows, err := readRows(l.path("users.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		name, err := r.get("name")
		if err != nil {
			return err
		}
		email, err := r.get("email")
		if err != nil {
			return err
		}
		address, err := r.get("address")
		if err != nil {
			return err
		}
		phone, err := r.get("phone_number")
		if err != nil {
			return err
		}
		schoolID, err := r.optionalUintField("school_id")
		if err != nil {
			return err
		}
		walletID, err := r.optionalUintField("wallet_id")
		if err != nil {
			return err
		}
		// Absent friend reference maps to a null FK, not a sentinel
		friendID, err := r.optionalUintField("friend_id")
		if err != nil {
			return err
		}
		u := domain.User{
			Name:        name,
			Email:       email,
			Address:     address,
			PhoneNumber: phone,
			SchoolID:    schoolID,
			WalletID:    walletID,
			FriendID:    friendID,
		}
		if err := tx.Create(&u).Error; err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded users")
	return nil
}

func (l *Loader) loadUserProfiles(tx *gorm.DB) error {
	rows, err := readRows(l.path("user_profiles.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		userID, err := r.uintField("user_id")
		if err != nil {
			return err
		}
		major, err := r.get("major")
		if err != nil {
			return err
		}
		classYear, err := r.intField("class_year")
		if err != nil {
			return err
		}
		residence, err := r.get("residence_type")
		if err != nil {
			return err
		}
		interests, err := r.get("interests")
		if err != nil {
			return err
		}
		p := domain.UserProfile{
			UserID:        userID,
			Major:         major,
			ClassYear:     classYear,
			ResidenceType: residence,
			Interests:     interests,
		}
		if err := upsert(tx, &p); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded user profiles")
	return nil
}

func (l *Loader) loadTransactions(tx *gorm.DB) error {
	// File name is singular in the source data
	rows, err := readRows(l.path("transaction.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.uintField("id")
		if err != nil {
			return err
		}
		userID, err := r.uintField("user_id")
		if err != nil {
			return err
		}
		walletID, err := r.optionalUintField("wallet_id")
		if err != nil {
			return err
		}
		merchant, err := r.get("merchant")
		if err != nil {
			return err
		}
		category, err := r.get("category")
		if err != nil {
			return err
		}
		amount, err := r.decimalField("amount")
		if err != nil {
			return err
		}
		location, err := r.get("location")
		if err != nil {
			return err
		}
		// CSV example: "2024-09-07 13:06:41"
		date, err := r.timeField("date", isoTimeLayout, isoSpaceLayout)
		if err != nil {
			return err
		}
		t := domain.Transaction{
			ID:       id,
			UserID:   userID,
			WalletID: walletID,
			Merchant: merchant,
			Category: category,
			Amount:   amount,
			Location: location,
			Date:     date,
		}
		if err := upsert(tx, &t); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded transactions")
	return nil
}

func (l *Loader) loadUserSecurityAnswers(tx *gorm.DB) error {
	rows, err := readRows(l.path("user_security_answers.csv"))
	if err != nil {
		return err
	}
	for _, r := range rows {
		id, err := r.uintField("id")
		if err != nil {
			return err
		}
		userID, err := r.uintField("user_id")
		if err != nil {
			return err
		}
		questionID, err := r.uintField("question_id")
		if err != nil {
			return err
		}
		answer, err := r.get("answer")
		if err != nil {
			return err
		}
		// Answers are stored hashed; sign-in compares with bcrypt
		hash, err := bcrypt.GenerateFromPassword([]byte(answer), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		a := domain.UserSecurityAnswer{
			ID:         id,
			UserID:     userID,
			QuestionID: questionID,
			Answer:     string(hash),
		}
		if err := upsert(tx, &a); err != nil {
			return err
		}
	}
	logrus.WithField("rows", len(rows)).Info("loaded user security answers")
	return nil
}
