package main

import "github.com/alsaqri/phoneshop/internal/core/domain"

var defaultCategories = []domain.AccessoryCategory{
	{Name: "chargers", ArabicName: "شواحن"},
	{Name: "cables", ArabicName: "كيابل"},
	{Name: "cases", ArabicName: "كفرات"},
	{Name: "screen_protectors", ArabicName: "حماية شاشة"},
	{Name: "headphones", ArabicName: "سماعات"},
	{Name: "power_banks", ArabicName: "باور بنك"},
	{Name: "memory_cards", ArabicName: "كروت ذاكرة"},
	{Name: "car_accessories", ArabicName: "إكسسوارات سيارة"},
	{Name: "other", ArabicName: "أخرى"},
}

var defaultModels = map[string][]string{
	"Apple": {
		"iPhone 15 Pro Max", "iPhone 15 Pro", "iPhone 15 Plus", "iPhone 15",
		"iPhone 14 Pro Max", "iPhone 14 Pro", "iPhone 14 Plus", "iPhone 14",
		"iPhone 13 Pro Max", "iPhone 13 Pro", "iPhone 13",
		"iPhone 12 Pro Max", "iPhone 12 Pro", "iPhone 12",
		"iPhone 11 Pro Max", "iPhone 11 Pro", "iPhone 11",
	},
	"Samsung": {
		"Galaxy S24 Ultra", "Galaxy S24+", "Galaxy S24",
		"Galaxy S23 Ultra", "Galaxy S23+", "Galaxy S23",
		"Galaxy S22 Ultra", "Galaxy S22+", "Galaxy S22",
		"Galaxy S21 Ultra", "Galaxy S21+", "Galaxy S21",
		"Galaxy A54", "Galaxy A34", "Galaxy A24",
	},
	"Huawei": {
		"P60 Pro", "P60", "P50 Pro", "P50",
		"Mate 60 Pro", "Mate 50 Pro", "Nova 11", "Nova 10",
	},
	"Xiaomi": {
		"14 Ultra", "14 Pro", "14", "13 Ultra", "13 Pro", "13",
		"Redmi Note 13 Pro+", "Redmi Note 13 Pro", "Redmi Note 13",
	},
	"OnePlus": {"12", "11", "10 Pro", "10", "Nord 3", "Nord 2T"},
	"Google":  {"Pixel 8 Pro", "Pixel 8", "Pixel 7 Pro", "Pixel 7", "Pixel 6 Pro", "Pixel 6"},
	"Oppo":    {"Find X7 Ultra", "Find X6 Pro", "Find X6", "Reno 11 Pro", "Reno 11", "Reno 10 Pro+"},
	"Vivo":    {"X100 Pro", "X100", "X90 Pro+", "X90 Pro", "V29 Pro", "V29"},
	"Realme":  {"GT 5 Pro", "GT 5", "GT Neo 5", "GT Neo 4"},
}

// brandOrder keeps the seeded ids stable between runs.
var brandOrder = []string{"Apple", "Samsung", "Huawei", "Xiaomi", "OnePlus", "Google", "Oppo", "Vivo", "Realme"}

func defaultPhoneTypes() []domain.PhoneType {
	var types []domain.PhoneType
	for _, brand := range brandOrder {
		for _, model := range defaultModels[brand] {
			types = append(types, domain.PhoneType{Brand: brand, Model: model})
		}
	}
	return types
}
