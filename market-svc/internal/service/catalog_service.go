package service

import (
	"venue-market/market-svc/internal/domain"
)

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListVenues() ([]domain.Venue, error) {
	return s.repo.ListVenues()
}

func (s *CatalogService) CreateVenue(fields domain.VenueFields) (*domain.Venue, error) {
	venue := &domain.Venue{
		Name:        fields.Name,
		City:        fields.City,
		Description: fields.Description,
		Lat:         fields.Lat,
		Lng:         fields.Lng,
		Deal:        fields.Deal,
	}
	if err := s.repo.CreateVenue(venue); err != nil {
		return nil, err
	}
	return venue, nil
}

func (s *CatalogService) ListProducts(venueID int) ([]domain.Product, error) {
	return s.repo.ListProducts(venueID)
}

func (s *CatalogService) ListAllProducts() ([]domain.Product, error) {
	return s.repo.ListAllProducts()
}

// CreateProduct places the product under fields.VenueID, or under the first venue
// in the catalog when no venue is given.
func (s *CatalogService) CreateProduct(fields domain.ProductFields) (*domain.Product, error) {
	product := &domain.Product{
		VenueID:     fields.VenueID,
		Name:        fields.Name,
		Price:       fields.Price,
		Description: fields.Description,
		Image:       fields.Image,
	}
	if err := s.repo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *CatalogService) UpdateProduct(id int, fields domain.ProductFields) (*domain.Product, error) {
	return s.repo.UpdateProduct(id, fields)
}

func (s *CatalogService) DeleteProduct(id int) error {
	return s.repo.DeleteProduct(id)
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
