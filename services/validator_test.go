package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flipSOsigma/catering-app/models"
)

func buildValidWeddingOrder() models.Order {
	order := models.Order{
		EventName:  "Pernikahan Sari & Bagus",
		Invitation: 50,
		Customer: models.Customer{
			Name:  "Sari Wulandari",
			Phone: "081234567890",
			Email: "sari@example.com",
		},
		Event: models.Event{
			Name:     "Resepsi",
			Category: models.CategoryWedding,
			Location: "Banyumanik",
			Building: "Gedung Serbaguna",
			Date:     "2025-07-20",
			Time:     "11:00",
		},
		Sections: []models.Section{
			{ID: "s1", Name: models.SectionBuffet, Portions: []models.Portion{
				{ID: "p1", Name: "Nasi Putih", Count: 200, Price: 15000},
			}},
			{ID: "s2", Name: models.SectionMenuPondokan, Portions: []models.Portion{
				{ID: "p2", Name: "Sate Ayam", Count: 100, Price: 20000},
			}},
			{ID: "s3", Name: models.SectionDessert, Portions: []models.Portion{
				{ID: "p3", Name: "Puding", Count: 50, Price: 8000},
			}},
		},
	}
	return Recalculate(order) // visitor = 100
}

func TestValidateAcceptsCompleteWeddingOrder(t *testing.T) {
	// buffet+menu = 300 >= 100*3, buffet+dessert = 250 >= 100
	result := Validate(buildValidWeddingOrder())
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Message)
}

func TestValidateRequiresEventName(t *testing.T) {
	order := buildValidWeddingOrder()
	order.EventName = ""

	result := Validate(order)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Event name is required", result.Message)
}

func TestValidateRequiresAllCustomerFields(t *testing.T) {
	for _, blank := range []func(*models.Order){
		func(o *models.Order) { o.Customer.Name = "" },
		func(o *models.Order) { o.Customer.Phone = "" },
		func(o *models.Order) { o.Customer.Email = "" },
	} {
		order := buildValidWeddingOrder()
		blank(&order)

		result := Validate(order)
		assert.False(t, result.IsValid)
		assert.Equal(t, "All customer fields are required", result.Message)
	}
}

func TestValidateRequiresAllEventFields(t *testing.T) {
	for _, blank := range []func(*models.Order){
		func(o *models.Order) { o.Event.Location = "" },
		func(o *models.Order) { o.Event.Building = "" },
		func(o *models.Order) { o.Event.Date = "" },
		func(o *models.Order) { o.Event.Time = "" },
	} {
		order := buildValidWeddingOrder()
		blank(&order)

		result := Validate(order)
		assert.False(t, result.IsValid)
		assert.Equal(t, "All event fields are required", result.Message)
	}
}

func TestValidateRequiresNamedPortion(t *testing.T) {
	order := buildValidWeddingOrder()
	for i := range order.Sections {
		for j := range order.Sections[i].Portions {
			order.Sections[i].Portions[j].Count = 0
		}
	}

	result := Validate(order)
	assert.False(t, result.IsValid)
	assert.Equal(t, "At least one menu item with portion count > 0 is required", result.Message)
}

func TestValidateBuffetMenuThreshold(t *testing.T) {
	order := buildValidWeddingOrder()
	// buffet 200 + menu 100 = 300, visitor 100 -> batas pas. Turunkan menu.
	order.Sections[1].Portions[0].Count = 50
	order = Recalculate(order)

	result := Validate(order)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Total Buffet + Menu portions (250) must be at least 300 (visitors × 3)", result.Message)
}

func TestValidateBuffetDessertThreshold(t *testing.T) {
	order := buildValidWeddingOrder()
	// Buffet+menu lolos (300+300 >= 300) tapi buffet+dessert kurang dari 100.
	order.Sections[0].Portions[0].Count = 60
	order.Sections[1].Portions[0].Count = 300
	order.Sections[2].Portions[0].Count = 30
	order = Recalculate(order)

	result := Validate(order)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Total Buffet + Dessert portions (90) must be at least 100 (number of visitors)", result.Message)
}

func TestValidateMissingSectionCountsAsZero(t *testing.T) {
	order := buildValidWeddingOrder()
	// Tanpa section Dessert: buffet sendirian harus >= visitor
	order.Sections = order.Sections[:2]
	order.Sections[0].Portions[0].Count = 30
	order.Sections[1].Portions[0].Count = 300
	order = Recalculate(order)

	result := Validate(order)
	assert.False(t, result.IsValid)
	assert.Equal(t, "Total Buffet + Dessert portions (30) must be at least 100 (number of visitors)", result.Message)
}

func TestValidateRiceboxSkipsGuestThresholds(t *testing.T) {
	order := buildValidWeddingOrder()
	order.Event.Category = models.CategoryRicebox
	order.Visitor = 1000
	// Porsi jauh di bawah ambang Wedding, tetap valid untuk Ricebox.
	order.Sections = []models.Section{
		{ID: "s1", Name: models.SectionMenuPondokan, Portions: []models.Portion{
			{ID: "p1", Name: "Nasi Box", Count: 10, Price: 25000},
		}},
	}

	result := Validate(order)
	assert.True(t, result.IsValid)
}
