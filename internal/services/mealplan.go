// mealplan.go
//
// MealMind API - meal planning and food waste tracking data service

package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/mealmind/mealmind-api/internal/models"
	"github.com/mealmind/mealmind-api/internal/types"
	"gorm.io/gorm"
)

// defaultMealTypes is the slot order used when a request does not name its
// own meal types.
var defaultMealTypes = []string{"Breakfast", "Lunch", "Dinner"}

// PlanGenerator creates meal plans, filling unspecified slots with randomly
// chosen active recipes. The random source is seeded once at construction so
// runs can be made reproducible.
type PlanGenerator struct {
	db  *gorm.DB
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPlanGenerator builds a generator over db. A zero seed falls back to the
// current time.
func NewPlanGenerator(db *gorm.DB, seed int64) *PlanGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PlanGenerator{
		db:  db,
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// DB exposes the generator's database handle for the read and delete paths
// that share its wiring.
func (g *PlanGenerator) DB() *gorm.DB {
	return g.db
}

// PlanEntryInput is one explicit slot assignment in a plan create request.
type PlanEntryInput struct {
	Date     types.FlexDate `json:"date"`
	MealType string         `json:"meal_type"`
	RecipeID *uint64        `json:"recipe_id"`
	Notes    string         `json:"notes"`
}

// CreatePlanInput carries a plan create request.
type CreatePlanInput struct {
	UserID      uint64
	StartDate   types.FlexDate
	EndDate     types.FlexDate
	MealsPerDay int
	MealTypes   []string
	IsSaved     *bool
	Entries     []PlanEntryInput
}

// PlanEntryRow is a plan entry joined with its recipe's name for reads.
type PlanEntryRow struct {
	MealPlanID uint64
	Date       types.FlexDate
	MealType   string
	RecipeID   *uint64
	RecipeName *string
	Notes      string
}

// PlanDetail is a plan header with its full entry list.
type PlanDetail struct {
	Plan    models.MealPlan
	Entries []PlanEntryRow
}

// Create builds and stores a meal plan. The end date defaults to six days
// after the start, giving a one week plan. Meals per day defaults to 3 and
// is clamped to the meal-type list length; the first mealsPerDay default
// meal types name the daily slots unless the request supplies its own list.
// Explicit entries override the random assignment for their slot and must
// fall inside the plan range. Remaining slots get a random active recipe,
// chosen with replacement.
func (g *PlanGenerator) Create(in CreatePlanInput) (uint64, error) {
	if in.StartDate.IsZero() {
		return 0, types.NewValidation("StartDate is required")
	}
	start, err := in.StartDate.Time()
	if err != nil {
		return 0, types.NewValidation("StartDate is not a valid date")
	}

	end := in.EndDate
	if end.IsZero() {
		end = in.StartDate.AddDays(6)
	}
	endT, err := end.Time()
	if err != nil {
		return 0, types.NewValidation("EndDate is not a valid date")
	}
	if endT.Before(start) {
		return 0, types.NewValidation("EndDate must not precede StartDate")
	}

	mealsPerDay := in.MealsPerDay
	if mealsPerDay <= 0 {
		mealsPerDay = len(defaultMealTypes)
	}
	if mealsPerDay > len(defaultMealTypes) {
		mealsPerDay = len(defaultMealTypes)
	}
	mealTypes := in.MealTypes
	if len(mealTypes) == 0 {
		mealTypes = defaultMealTypes[:mealsPerDay]
	}

	days := types.DaysBetween(in.StartDate, end) + 1

	// Index explicit assignments by slot, rejecting out-of-range dates.
	explicit := make(map[string]PlanEntryInput, len(in.Entries))
	for _, e := range in.Entries {
		if e.MealType == "" {
			return 0, types.NewValidation("entry MealType is required")
		}
		d := types.DaysBetween(in.StartDate, e.Date)
		if e.Date.IsZero() || d < 0 || d >= days {
			return 0, types.NewValidation("entry date %s is outside the plan range", e.Date)
		}
		explicit[string(e.Date)+"|"+e.MealType] = e
	}

	var recipes []models.Recipe
	if err := g.db.Where("status = ?", models.RecipeStatusActive).Find(&recipes).Error; err != nil {
		return 0, err
	}

	saved := true
	if in.IsSaved != nil {
		saved = *in.IsSaved
	}
	plan := models.MealPlan{
		UserID:    in.UserID,
		StartDate: in.StartDate,
		EndDate:   end,
		IsSaved:   saved,
	}
	entries := make([]models.MealPlanEntry, 0, days*len(mealTypes))

	g.mu.Lock()
	for d := 0; d < days; d++ {
		date := in.StartDate.AddDays(d)
		for _, mt := range mealTypes {
			entry := models.MealPlanEntry{Date: date, MealType: mt}
			if e, ok := explicit[string(date)+"|"+mt]; ok {
				entry.RecipeID = e.RecipeID
				entry.Notes = e.Notes
			} else if len(recipes) > 0 {
				id := recipes[g.rnd.Intn(len(recipes))].RecipeID
				entry.RecipeID = &id
			}
			entries = append(entries, entry)
		}
	}
	g.mu.Unlock()

	err = g.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].MealPlanID = plan.MealPlanID
		}
		if len(entries) > 0 {
			return tx.Create(&entries).Error
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return plan.MealPlanID, nil
}

// GetMealPlan returns a plan header with its entries, ordered by date then
// meal type, restricted to the owning user.
func GetMealPlan(db *gorm.DB, userID, planID uint64) (PlanDetail, error) {
	var detail PlanDetail
	err := db.Where("meal_plan_id = ? AND user_id = ?", planID, userID).
		First(&detail.Plan).Error
	if err == gorm.ErrRecordNotFound {
		return detail, types.NewNotFound("meal plan")
	}
	if err != nil {
		return detail, err
	}

	err = db.Table("meal_plan_entries e").
		Select("e.meal_plan_id, e.date, e.meal_type, e.recipe_id, r.name AS recipe_name, e.notes").
		Joins("LEFT JOIN recipes r ON e.recipe_id = r.recipe_id").
		Where("e.meal_plan_id = ?", planID).
		Order("e.date, e.meal_type").
		Scan(&detail.Entries).Error
	return detail, err
}

// DeleteMealPlan removes a plan and its entries in one transaction. A plan
// the user does not own reads as not found.
func DeleteMealPlan(db *gorm.DB, userID, planID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", planID).
			Delete(&models.MealPlanEntry{}).Error; err != nil {
			return err
		}
		result := tx.Where("meal_plan_id = ? AND user_id = ?", planID, userID).
			Delete(&models.MealPlan{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return types.NewNotFound("meal plan")
		}
		return nil
	})
}

// ListMealPlans returns a user's plan headers, most recent start first.
// currentOnly narrows to plans whose range covers today.
func ListMealPlans(db *gorm.DB, userID uint64, currentOnly bool) ([]models.MealPlan, error) {
	q := db.Where("user_id = ?", userID)
	if currentOnly {
		today := types.Today()
		q = q.Where("start_date <= ? AND end_date >= ?", today, today)
	}
	var plans []models.MealPlan
	err := q.Order("start_date DESC").Find(&plans).Error
	return plans, err
}
