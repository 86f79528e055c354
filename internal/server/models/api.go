package models

import "github.com/dmitrijs2005/gophstore/internal/api"

// SnapshotToAPI converts stored products into a wire snapshot, keeping
// their order.
func SnapshotToAPI(list []*Product) *api.ProductSnapshot {
	out := &api.ProductSnapshot{Products: make([]*api.Product, 0, len(list))}
	for _, p := range list {
		out.Products = append(out.Products, &api.Product{
			ID:        p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Sold:      p.Sold,
			ImageRef:  p.ImageRef,
			OwnerID:   p.OwnerID,
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}
