package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/grupogen/premios-api/internal/domain/entity"
	"github.com/grupogen/premios-api/internal/domain/normalize"
)

// toPlain reemplaza recursivamente los tipos BSON por tipos Go comunes
// (map[string]any, []any, time.Time, string) para que el dominio no dependa del driver.
func toPlain(v any) any {
	switch x := v.(type) {
	case primitive.M:
		return plainMap(x)
	case map[string]any:
		return plainMap(x)
	case primitive.D:
		m := make(map[string]any, len(x))
		for _, e := range x {
			m[e.Key] = toPlain(e.Value)
		}
		return m
	case primitive.A:
		return plainList(x)
	case []any:
		return plainList(x)
	case primitive.DateTime:
		return x.Time().UTC()
	case primitive.Timestamp:
		return time.Unix(int64(x.T), 0).UTC()
	case primitive.ObjectID:
		return x.Hex()
	case primitive.Decimal128:
		return x.String()
	case primitive.Null, primitive.Undefined:
		return nil
	default:
		return x
	}
}

func plainMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, val := range in {
		out[k] = toPlain(val)
	}
	return out
}

func plainList(in []any) []any {
	out := make([]any, len(in))
	for i, val := range in {
		out[i] = toPlain(val)
	}
	return out
}

func toDocument(raw bson.M) entity.Document {
	return entity.Document(plainMap(raw))
}

func prizeFromDocument(doc entity.Document) entity.PrizeItem {
	return entity.PrizeItem{
		ID:              normalize.Text(doc["_id"]),
		Description:     normalize.Text(doc["description"]),
		Category:        normalize.Text(doc["category"]),
		StockGrupoGen:   doc["stock_grupogen"],
		StockMonteverde: doc["stock_monteverde"],
		StockBettica:    doc["stock_bettica"],
		StockTobago1:    doc["stock_tobago1"],
		Cost:            doc["cost"],
		Points:          doc["points"],
		Status:          doc["status"],
		ScrapedAt:       doc["scrapedAt"],
	}
}

// coffeeFromDocument ignora los elementos de "egresos" que no son objetos.
func coffeeFromDocument(doc entity.Document) entity.CoffeeMovementDoc {
	out := entity.CoffeeMovementDoc{
		TipoCafe:    normalize.Text(doc["tipoCafe"]),
		ScrapedAt:   doc["scrapedAt"],
		PeriodMonth: normalize.Text(doc["periodMonth"]),
	}
	list, _ := doc["egresos"].([]any)
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out.Egresos = append(out.Egresos, entity.CoffeeEgress{
			Entidad:  m["entidad"],
			Cantidad: m["cantidad"],
		})
	}
	return out
}
