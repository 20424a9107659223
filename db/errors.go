package db

import (
	"errors"
	"strings"

	"learnhub/apperr"

	"github.com/jinzhu/gorm"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

type violation int

const (
	noViolation violation = iota
	foreignKeyViolation
	uniqueViolation
)

// MissingReferenceMessage is used for foreign key failures that do not say
// which key failed.
const MissingReferenceMessage = "referenced record not found"

// postgres SQLSTATE codes
const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
)

// constraint name -> the entity a failing foreign key points at
var referencedEntity = map[string]string{
	"prompts_user_fk":            "user",
	"prompts_category_fk":        "category",
	"prompts_sub_category_fk":    "sub-category",
	"sub_categories_category_fk": "category",
}

// TranslateError maps gorm and driver errors onto the apperr taxonomy.
// Foreign key failures become not-found, uniqueness failures conflict, and
// anything unrecognised internal. Errors already in the taxonomy pass through.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if gorm.IsRecordNotFoundError(err) {
		return apperr.New(apperr.KindNotFound, "record not found", err)
	}

	kind, constraint := classify(err)
	switch kind {
	case foreignKeyViolation:
		if entity, ok := referencedEntity[constraint]; ok {
			return apperr.New(apperr.KindNotFound, entity+" not found", err)
		}
		return apperr.New(apperr.KindNotFound, MissingReferenceMessage, err)
	case uniqueViolation:
		return apperr.New(apperr.KindConflict, uniqueMessage(constraint), err)
	}
	return apperr.Internal(err)
}

func classify(err error) (violation, string) {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pqForeignKeyViolation:
			return foreignKeyViolation, pqErr.Constraint
		case pqUniqueViolation:
			return uniqueViolation, pqErr.Constraint
		}
		return noViolation, ""
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintForeignKey:
			// sqlite does not say which key failed
			return foreignKeyViolation, ""
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return uniqueViolation, liteErr.Error()
		}
	}
	return noViolation, ""
}

// uniqueMessage accepts a postgres constraint name or a sqlite message such as
// "UNIQUE constraint failed: categories.name".
func uniqueMessage(constraint string) string {
	switch {
	case strings.Contains(constraint, "sub_categories"):
		return "Sub-category name already exists for this category"
	case strings.Contains(constraint, "categories"):
		return "Category name already exists"
	default:
		return "record already exists"
	}
}
