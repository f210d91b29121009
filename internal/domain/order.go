package domain

import (
	"fmt"
	"time"
)

// OrderType discriminates the order variants
type OrderType string

const (
	OrderTypeCrop      OrderType = "crop"
	OrderTypeCropGroup OrderType = "crop-group"
	OrderTypeNectar    OrderType = "nectar"
)

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusExpired   OrderStatus = "expired"
)

// CropQuantity is a crop id paired with a required amount
type CropQuantity struct {
	CropID   string `json:"cropId"`
	Quantity int    `json:"quantity"`
}

// NectarRequirement asks for bottled nectar
type NectarRequirement struct {
	Quantity int `json:"quantity"`
}

// Order is a merchant request. Exactly one of Crop, Group or Nectar is set, matching Type.
type Order struct {
	ID              string             `json:"id"`
	Type            OrderType          `json:"type"`
	MerchantID      string             `json:"merchantId"`
	CreatedAt       time.Time          `json:"createdAt"`
	ExpiresAt       time.Time          `json:"expiresAt"`
	Status          OrderStatus        `json:"status"`
	Level           int                `json:"level"`
	BaseReward      int                `json:"baseReward"`
	BonusPercentage int                `json:"bonusPercentage"`
	TotalReward     int                `json:"totalReward"`
	Crop            *CropQuantity      `json:"crop,omitempty"`
	Group           []CropQuantity     `json:"group,omitempty"`
	Nectar          *NectarRequirement `json:"nectar,omitempty"`
}

// RequirementKind tells fulfillment which inventory bucket to debit
type RequirementKind string

const (
	RequirementCrop RequirementKind = "crop"
	RequirementItem RequirementKind = "item"
)

// Requirement is a single inventory debit needed to fulfill an order
type Requirement struct {
	Kind     RequirementKind `json:"kind"`
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
}

// Requirements flattens the order variant into inventory debits
func (o Order) Requirements() ([]Requirement, error) {
	switch o.Type {
	case OrderTypeCrop:
		if o.Crop == nil {
			return nil, fmt.Errorf("%w: crop order %s has no crop", ErrInvalidInput, o.ID)
		}
		return []Requirement{{Kind: RequirementCrop, ID: o.Crop.CropID, Quantity: o.Crop.Quantity}}, nil
	case OrderTypeCropGroup:
		if len(o.Group) == 0 {
			return nil, fmt.Errorf("%w: group order %s has no crops", ErrInvalidInput, o.ID)
		}
		reqs := make([]Requirement, 0, len(o.Group))
		for _, cq := range o.Group {
			reqs = append(reqs, Requirement{Kind: RequirementCrop, ID: cq.CropID, Quantity: cq.Quantity})
		}
		return reqs, nil
	case OrderTypeNectar:
		if o.Nectar == nil {
			return nil, fmt.Errorf("%w: nectar order %s has no quantity", ErrInvalidInput, o.ID)
		}
		return []Requirement{{Kind: RequirementItem, ID: ItemBottledNectar, Quantity: o.Nectar.Quantity}}, nil
	default:
		return nil, fmt.Errorf("%w: unknown order type %q", ErrInvalidInput, o.Type)
	}
}

// CropIDs returns the crops an order asks for
func (o Order) CropIDs() []string {
	switch o.Type {
	case OrderTypeCrop:
		if o.Crop != nil {
			return []string{o.Crop.CropID}
		}
	case OrderTypeCropGroup:
		ids := make([]string, 0, len(o.Group))
		for _, cq := range o.Group {
			ids = append(ids, cq.CropID)
		}
		return ids
	case OrderTypeNectar:
		return []string{"nectar"}
	}
	return nil
}

// IsExpired reports whether the order is past its expiry at now
func (o Order) IsExpired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}

// FulfillResult is returned after a successful fulfillment
type FulfillResult struct {
	Order          Order `json:"order"`
	CoinsEarned    int   `json:"coinsEarned"`
	AffinityGained int   `json:"affinityGained"`
	NewAffinity    int   `json:"newAffinity"`
}

// OrderGenerationResult reports what a generation check did
type OrderGenerationResult struct {
	Generated []Order `json:"generated"`
	Active    []Order `json:"active"`
	Skipped   string  `json:"skipped,omitempty"`
}
