package db

import (
	"fmt"

	"learnhub/models"

	"github.com/jinzhu/gorm"
)

type seedCategory struct {
	name          string
	subCategories []string
}

var seedCategories = []seedCategory{
	{"Mathematics", []string{"Addition and subtraction", "Fractions and percentages", "Algebra", "Geometry", "Word problems"}},
	{"English", []string{"Grammar", "Vocabulary", "Reading comprehension", "Speaking", "Writing"}},
	{"Science", []string{"Physics", "Chemistry", "Biology", "Ecology"}},
	{"Technology", []string{"Programming basics", "Artificial intelligence", "Cyber security", "Robotics", "The internet"}},
	{"History & Civics", []string{"Jewish history", "World history", "The State of Israel", "Values and rights"}},
	{"Literature & Language", []string{"Text analysis", "Vocabulary", "Essay writing"}},
	{"General", []string{"Trivia", "General culture", "Travel the world", "Quizzes", "Popular science"}},
	{"Creativity & Thinking", []string{"Creative thinking", "Idea development", "Art and design", "Problem solving"}},
}

// Seed wipes every table and loads the sample user, the category tree and
// one sample prompt. It runs in a single transaction.
func Seed(database *gorm.DB) error {
	tx := database.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := seed(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func seed(tx *gorm.DB) error {
	if err := wipe(tx); err != nil {
		return err
	}

	user := models.User{Name: "Rivka Peretz", Phone: "050-0000000"}
	if err := tx.Create(&user).Error; err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	ids := map[string]int64{}
	for _, sc := range seedCategories {
		category := models.Category{Name: sc.name}
		if err := tx.Create(&category).Error; err != nil {
			return fmt.Errorf("seed category %s: %w", sc.name, err)
		}
		ids[sc.name] = category.ID

		for _, name := range sc.subCategories {
			sub := models.SubCategory{Name: name, CategoryID: category.ID}
			if err := tx.Create(&sub).Error; err != nil {
				return fmt.Errorf("seed sub-category %s: %w", name, err)
			}
		}
	}

	technology := ids["Technology"]
	prompt := models.Prompt{
		UserID:     user.ID,
		CategoryID: &technology,
		Prompt:     "What is artificial intelligence?",
		Response:   "Artificial intelligence is a field of computer science that builds systems able to learn, reason and solve problems the way people do.",
	}
	if err := tx.Create(&prompt).Error; err != nil {
		return fmt.Errorf("seed prompt: %w", err)
	}
	return nil
}

func wipe(tx *gorm.DB) error {
	if tx.Dialect().GetName() == DialectPostgres {
		return tx.Exec("TRUNCATE TABLE prompts, sub_categories, categories, users RESTART IDENTITY CASCADE").Error
	}
	for _, table := range []string{"prompts", "sub_categories", "categories", "users"} {
		if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("wipe %s: %w", table, err)
		}
	}
	// sqlite_sequence only exists once an AUTOINCREMENT table has been written to
	tx.Exec("DELETE FROM sqlite_sequence")
	return nil
}
