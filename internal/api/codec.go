package api

import (
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/shopspring/decimal"

	"github.com/OsuohaNnamdi/warelink-admin/internal/domain/order"
)

// Wire codec for order payloads. The backend is loose about scalar
// representations (ids and amounts arrive as numbers or strings,
// nullable fields as null), so decoding is explicit rather than
// tag-driven.

func decodeOrderBytes(data []byte) (*order.Order, error) {
	d := jx.DecodeBytes(data)
	o, err := decodeOrder(d)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func decodeOrders(data []byte) ([]order.Order, error) {
	d := jx.DecodeBytes(data)
	var out []order.Order
	if err := d.Arr(func(d *jx.Decoder) error {
		o, err := decodeOrder(d)
		if err != nil {
			return err
		}
		out = append(out, o)
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func decodeOrder(d *jx.Decoder) (order.Order, error) {
	var o order.Order
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "id":
			id, err := decodeID(d)
			o.ID = id
			return err
		case "status":
			s, err := decodeStatus(d)
			o.Status = s
			return err
		case "notes":
			// Absent or null notes normalize to "".
			s, err := decodeNullableStr(d)
			o.Notes = s
			return err
		case "total_price":
			v, err := decodeDecimal(d)
			o.TotalPrice = v
			return err
		case "created_at":
			t, err := decodeTime(d)
			o.CreatedAt = t
			return err
		case "payment_info":
			s, err := decodeNullableStr(d)
			o.PaymentInfo = s
			return err
		case "payment_status":
			s, err := decodeNullableStr(d)
			o.PaymentStatus = s
			return err
		case "customer_details":
			return d.Obj(func(d *jx.Decoder, key string) error {
				switch key {
				case "firstname":
					s, err := d.Str()
					o.Customer.FirstName = s
					return err
				case "lastname":
					s, err := d.Str()
					o.Customer.LastName = s
					return err
				case "email":
					s, err := d.Str()
					o.Customer.Email = s
					return err
				default:
					return d.Skip()
				}
			})
		case "address":
			return d.Obj(func(d *jx.Decoder, key string) error {
				switch key {
				case "addressLine1":
					s, err := d.Str()
					o.Address.Line1 = s
					return err
				case "city":
					s, err := d.Str()
					o.Address.City = s
					return err
				case "state":
					s, err := d.Str()
					o.Address.State = s
					return err
				case "phone":
					s, err := d.Str()
					o.Address.Phone = s
					return err
				default:
					return d.Skip()
				}
			})
		case "order_items":
			return d.Arr(func(d *jx.Decoder) error {
				item, err := decodeItem(d)
				if err != nil {
					return err
				}
				o.Items = append(o.Items, item)
				return nil
			})
		default:
			return d.Skip()
		}
	})
	if err != nil {
		return order.Order{}, errors.Wrap(err, "decode order")
	}
	return o, nil
}

func decodeItem(d *jx.Decoder) (order.Item, error) {
	var item order.Item
	err := d.Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "quantity":
			n, err := d.Int()
			item.Quantity = n
			return err
		case "total":
			v, err := decodeDecimal(d)
			item.Total = v
			return err
		case "status":
			s, err := decodeStatus(d)
			item.Status = s
			return err
		case "product":
			return d.Obj(func(d *jx.Decoder, key string) error {
				switch key {
				case "name":
					s, err := d.Str()
					item.Product.Name = s
					return err
				case "price":
					v, err := decodeDecimal(d)
					item.Product.Price = v
					return err
				case "main_image":
					s, err := decodeNullableStr(d)
					item.Product.MainImage = s
					return err
				case "sku":
					s, err := decodeNullableStr(d)
					item.Product.SKU = s
					return err
				default:
					return d.Skip()
				}
			})
		default:
			return d.Skip()
		}
	})
	return item, err
}

// decodeID accepts string or numeric ids and normalizes to string.
func decodeID(d *jx.Decoder) (string, error) {
	if d.Next() == jx.String {
		return d.Str()
	}
	n, err := d.Num()
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func decodeStatus(d *jx.Decoder) (order.Status, error) {
	s, err := d.Str()
	if err != nil {
		return "", err
	}
	return order.ParseStatus(s)
}

func decodeNullableStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}

func decodeDecimal(d *jx.Decoder) (decimal.Decimal, error) {
	switch d.Next() {
	case jx.String:
		s, err := d.Str()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(s)
	case jx.Null:
		return decimal.Zero, d.Null()
	default:
		n, err := d.Num()
		if err != nil {
			return decimal.Zero, err
		}
		return decimal.NewFromString(n.String())
	}
}

// timeFormats in preference order; the backend emits RFC 3339 but
// older records carry no zone suffix.
var timeFormats = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func decodeTime(d *jx.Decoder) (time.Time, error) {
	s, err := d.Str()
	if err != nil {
		return time.Time{}, err
	}
	for _, layout := range timeFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognized timestamp %q", s)
}

func encodeOrderUpdate(upd order.Update) []byte {
	var e jx.Encoder
	e.ObjStart()
	e.FieldStart("status")
	e.Str(string(upd.Status))
	e.FieldStart("notes")
	e.Str(upd.Notes)
	e.ObjEnd()
	return e.Bytes()
}
