package memory

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/billfold/billfold-api/internal/domain/entity"
)

// DefaultCatalog returns the product snapshot used until the upstream
// catalog API is wired in.
func DefaultCatalog() []entity.CatalogProduct {
	return []entity.CatalogProduct{
		{ID: uuid.New(), Name: "Basmati Rice 5kg", Brand: "India Gate", Barcode: "8901058000290", SellingPrice: 625, MRP: 699},
		{ID: uuid.New(), Name: "Sunflower Oil 1L", Brand: "Fortune", Barcode: "8901030529764", SellingPrice: 145, MRP: 160},
		{ID: uuid.New(), Name: "Toor Dal 1kg", Brand: "Tata Sampann", Barcode: "8904043900113", SellingPrice: 178, MRP: 195},
		{ID: uuid.New(), Name: "Green Tea 100g", Brand: "Lipton", Barcode: "8901030610721", SellingPrice: 240, MRP: 260},
		{ID: uuid.New(), Name: "Wheat Flour 10kg", Brand: "Aashirvaad", Barcode: "8901725133160", SellingPrice: 455, MRP: 480},
		{ID: uuid.New(), Name: "Salt 1kg", Brand: "Tata", Barcode: "8904043900120", SellingPrice: 25, MRP: 28},
		{ID: uuid.New(), Name: "Sugar 1kg", Brand: "Madhur", Barcode: "8904063201003", SellingPrice: 48, MRP: 52},
		{ID: uuid.New(), Name: "Instant Coffee 50g", Brand: "Nescafe", Barcode: "8901058839302", SellingPrice: 175, MRP: 190},
	}
}

// SeedDefaultAdmin creates the bootstrap admin account if it does not
// exist yet.
func SeedDefaultAdmin(users *UserRepository, email, password string) error {
	existing, err := users.GetByEmail(context.Background(), email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Name:         "Administrator",
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := users.Create(context.Background(), admin); err != nil {
		return err
	}

	log.Printf("Seeded default admin account: %s", email)
	return nil
}
