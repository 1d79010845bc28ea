package main

import (
	"fmt"

	"github.com/sofreh-next/internal/config"
	"github.com/sofreh-next/internal/i18n"
	"github.com/sofreh-next/internal/logger"
	"github.com/sofreh-next/internal/models"
	"github.com/sofreh-next/internal/repository"

	"github.com/shopspring/decimal"
)

type seedItem struct {
	category      string
	nameEn        string
	nameFa        string
	descriptionEn string
	descriptionFa string
	price         float64
	image         string
	isPopular     bool
	minutes       int
	calories      float64
	protein       float64
	carbs         float64
	fats          float64
	allergens     []models.Allergen
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Slug: "burger", NameEn: "Burgers", NameFa: "برگر", Icon: "/images/icons/burger.svg", SortOrder: 10},
		{Slug: "pizza", NameEn: "Pizza", NameFa: "پیتزا", Icon: "/images/icons/pizza.svg", SortOrder: 20},
		{Slug: "kebab", NameEn: "Kebab", NameFa: "کباب", Icon: "/images/icons/kebab.svg", SortOrder: 30},
		{Slug: "appetizer", NameEn: "Appetizers", NameFa: "پیش‌غذا", Icon: "/images/icons/appetizer.svg", SortOrder: 40},
		{Slug: "shake", NameEn: "Shakes", NameFa: "شیک", Icon: "/images/icons/shake.svg", SortOrder: 50},
	}
	categoryRepo := repository.NewCategoryRepository(models.DB)
	for _, category := range categories {
		count, err := categoryRepo.CountBySlug(category.Slug)
		if err != nil {
			stdLog.Printf("Failed to check category %s: %v", category.Slug, err)
			continue
		}
		if count > 0 {
			continue
		}
		if err := categoryRepo.Create(&category); err != nil {
			stdLog.Printf("Failed to create category %s: %v", category.Slug, err)
		} else {
			stdLog.Printf("Created category: %s", category.Slug)
		}
	}

	dairy := models.Allergen{En: "Dairy", Fa: "لبنیات"}
	gluten := models.Allergen{En: "Gluten", Fa: "گلوتن"}
	eggs := models.Allergen{En: "Eggs", Fa: "تخم‌مرغ"}

	items := []seedItem{
		{category: "burger", nameEn: "Classic Cheeseburger", nameFa: "چیزبرگر کلاسیک",
			descriptionEn: "Juicy beef patty with cheese, lettuce, tomato", descriptionFa: "برگر گوشت آبدار با پنیر، کاهو، گوجه",
			price: 12.99, image: "/images/menu/cheeseburger.jpg", isPopular: true, minutes: 20,
			calories: 650, protein: 32, carbs: 45, fats: 38, allergens: []models.Allergen{dairy, gluten}},
		{category: "burger", nameEn: "BBQ Bacon Burger", nameFa: "برگر بیکن باربیکیو",
			descriptionEn: "Smoky BBQ sauce with crispy bacon", descriptionFa: "سس باربیکیو دودی با بیکن ترد",
			price: 14.99, image: "/images/menu/bbq-burger.jpg", minutes: 25,
			calories: 780, protein: 38, carbs: 48, fats: 46, allergens: []models.Allergen{gluten}},
		{category: "burger", nameEn: "Mushroom Swiss Burger", nameFa: "برگر قارچ سوئیسی",
			descriptionEn: "Grilled mushrooms with Swiss cheese", descriptionFa: "قارچ کبابی با پنیر سوئیسی",
			price: 13.99, image: "/images/menu/mushroom-burger.jpg", minutes: 20,
			calories: 620, protein: 30, carbs: 42, fats: 34, allergens: []models.Allergen{dairy, gluten}},
		{category: "burger", nameEn: "Double Deluxe Burger", nameFa: "برگر دابل دلوکس",
			descriptionEn: "Double patty with premium toppings", descriptionFa: "دو پتی با طعم‌های ممتاز",
			price: 16.99, image: "/images/menu/double-burger.jpg", isPopular: true, minutes: 25,
			calories: 950, protein: 52, carbs: 50, fats: 58, allergens: []models.Allergen{dairy, gluten}},
		{category: "pizza", nameEn: "Margherita Pizza", nameFa: "پیتزا مارگاریتا",
			descriptionEn: "Fresh mozzarella, tomato sauce, basil", descriptionFa: "موزارلا تازه، سس گوجه، ریحان",
			price: 15.99, image: "/images/menu/margherita.jpg", isPopular: true, minutes: 30,
			calories: 720, protein: 28, carbs: 80, fats: 30, allergens: []models.Allergen{dairy, gluten}},
		{category: "pizza", nameEn: "Pepperoni Pizza", nameFa: "پیتزا پپرونی",
			descriptionEn: "Classic pepperoni with mozzarella cheese", descriptionFa: "پپرونی کلاسیک با پنیر موزارلا",
			price: 17.99, image: "/images/menu/pepperoni.jpg", minutes: 30,
			calories: 820, protein: 34, carbs: 78, fats: 40, allergens: []models.Allergen{dairy, gluten}},
		{category: "pizza", nameEn: "Supreme Pizza", nameFa: "پیتزا سوپریم",
			descriptionEn: "Loaded with pepperoni, sausage, peppers, onions", descriptionFa: "پر از پپرونی، سوسیس، فلفل، پیاز",
			price: 19.99, image: "/images/menu/supreme.jpg", isPopular: true, minutes: 35,
			calories: 880, protein: 38, carbs: 82, fats: 44, allergens: []models.Allergen{dairy, gluten}},
		{category: "kebab", nameEn: "Chicken Kebab", nameFa: "کباب مرغ",
			descriptionEn: "Grilled chicken skewers with rice", descriptionFa: "سیخ مرغ کبابی با برنج",
			price: 18.50, image: "/images/menu/chicken-kebab.jpg", isPopular: true, minutes: 25,
			calories: 560, protein: 45, carbs: 55, fats: 16},
		{category: "kebab", nameEn: "Beef Koobideh", nameFa: "کوبیده گوشت",
			descriptionEn: "Traditional Persian ground beef kebab", descriptionFa: "کباب کوبیده سنتی ایرانی",
			price: 20.99, image: "/images/menu/koobideh.jpg", minutes: 30,
			calories: 640, protein: 42, carbs: 52, fats: 28},
		{category: "kebab", nameEn: "Mixed Grill Platter", nameFa: "بشقاب مخلوط",
			descriptionEn: "Combination of chicken and beef kebabs", descriptionFa: "ترکیبی از کباب مرغ و گوشت",
			price: 24.99, image: "/images/menu/mixed-grill.jpg", isPopular: true, minutes: 35,
			calories: 840, protein: 62, carbs: 58, fats: 36},
		{category: "appetizer", nameEn: "Caesar Salad", nameFa: "سالاد سزار",
			descriptionEn: "Fresh romaine lettuce with caesar dressing", descriptionFa: "کاهو تازه با سس سزار",
			price: 8.99, image: "/images/menu/caesar-salad.jpg", minutes: 10,
			calories: 320, protein: 10, carbs: 18, fats: 24, allergens: []models.Allergen{dairy, eggs}},
		{category: "appetizer", nameEn: "Buffalo Wings", nameFa: "بال مرغ بوفالو",
			descriptionEn: "Spicy buffalo wings with ranch dressing", descriptionFa: "بال مرغ تند با سس رنچ",
			price: 11.99, image: "/images/menu/buffalo-wings.jpg", isPopular: true, minutes: 20,
			calories: 540, protein: 36, carbs: 12, fats: 38, allergens: []models.Allergen{dairy}},
		{category: "appetizer", nameEn: "Mozzarella Sticks", nameFa: "استیک موزارلا",
			descriptionEn: "Crispy breaded mozzarella with marinara sauce", descriptionFa: "موزارلا سوخاری ترد با سس مارینارا",
			price: 7.99, image: "/images/menu/mozzarella-sticks.jpg", minutes: 15,
			calories: 460, protein: 18, carbs: 38, fats: 26, allergens: []models.Allergen{dairy, gluten}},
		{category: "shake", nameEn: "Chocolate Milkshake", nameFa: "شیک شکلاتی",
			descriptionEn: "Rich chocolate milkshake with whipped cream", descriptionFa: "شیک شکلات غنی با خامه",
			price: 6.99, image: "/images/menu/chocolate-shake.jpg", isPopular: true, minutes: 5,
			calories: 520, protein: 12, carbs: 74, fats: 20, allergens: []models.Allergen{dairy}},
		{category: "shake", nameEn: "Vanilla Milkshake", nameFa: "شیک وانیلی",
			descriptionEn: "Classic vanilla milkshake with cherry on top", descriptionFa: "شیک وانیل کلاسیک با آلبالو",
			price: 6.49, image: "/images/menu/vanilla-shake.jpg", minutes: 5,
			calories: 480, protein: 11, carbs: 70, fats: 18, allergens: []models.Allergen{dairy}},
		{category: "shake", nameEn: "Strawberry Shake", nameFa: "شیک توت فرنگی",
			descriptionEn: "Fresh strawberry milkshake with real fruit", descriptionFa: "شیک توت فرنگی با میوه طبیعی",
			price: 7.49, image: "/images/menu/strawberry-shake.jpg", isPopular: true, minutes: 5,
			calories: 500, protein: 11, carbs: 72, fats: 19, allergens: []models.Allergen{dairy}},
	}

	created := 0
	for i, item := range items {
		var existing models.MenuItem
		if err := models.DB.Where("name_en = ?", item.nameEn).First(&existing).Error; err == nil {
			continue
		}
		price := decimal.NewFromFloat(item.price)
		menuItem := models.MenuItem{
			Category:      item.category,
			NameEn:        item.nameEn,
			NameFa:        item.nameFa,
			DescriptionEn: item.descriptionEn,
			DescriptionFa: item.descriptionFa,
			PriceEn:       models.NewMoneyFromDecimal(price),
			PriceFa:       i18n.FormatGroupedFarsi(price),
			IsPopular:     item.isPopular,
			Nutrition: models.JSON(map[string]interface{}{
				"calories": item.calories,
				"protein":  item.protein,
				"carbs":    item.carbs,
				"fats":     item.fats,
			}),
			Allergens:        models.AllergenList(item.allergens),
			Images:           models.StringArray{item.image},
			EstimatedMinutes: item.minutes,
			SortOrder:        (i + 1) * 10,
		}
		if err := models.DB.Create(&menuItem).Error; err != nil {
			stdLog.Printf("Failed to create menu item %s: %v", item.nameEn, err)
			continue
		}
		created++
		stdLog.Printf("Created menu item: %s", item.nameEn)
	}

	fmt.Println("\n✅ Seed data ready!")
	fmt.Println("Summary:")
	fmt.Printf("- %d categories\n", len(categories))
	fmt.Printf("- %d menu items created (%d total in catalog)\n", created, len(items))
}
