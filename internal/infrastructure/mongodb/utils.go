package mongodb

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// aDecimal128 convierte un decimal de dominio a Decimal128 de BSON.
func aDecimal128(d decimal.Decimal) primitive.Decimal128 {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}
	}
	return v
}

// deDecimal128 convierte un Decimal128 de BSON a decimal de dominio.
func deDecimal128(v primitive.Decimal128) decimal.Decimal {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero
	}
	return d
}

// aDecimal128Ptr y deDecimal128Ptr manejan campos opcionales (ej. precio de alquiler).
func aDecimal128Ptr(d *decimal.Decimal) *primitive.Decimal128 {
	if d == nil {
		return nil
	}
	v := aDecimal128(*d)
	return &v
}

func deDecimal128Ptr(v *primitive.Decimal128) *decimal.Decimal {
	if v == nil {
		return nil
	}
	d := deDecimal128(*v)
	return &d
}
