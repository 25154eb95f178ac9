package mexcapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

func ParseOrderSide(s string) (OrderSide, error) {
	switch side := OrderSide(strings.ToUpper(s)); side {
	case OrderSideBuy, OrderSideSell:
		return side, nil
	}

	return "", fmt.Errorf("invalid order side: %q", s)
}

type OrderType string

const (
	OrderTypeLimit             OrderType = "LIMIT"
	OrderTypeMarket            OrderType = "MARKET"
	OrderTypeLimitMaker        OrderType = "LIMIT_MAKER"
	OrderTypeImmediateOrCancel OrderType = "IMMEDIATE_OR_CANCEL"
	OrderTypeFillOrKill        OrderType = "FILL_OR_KILL"
)

var orderTypes = []OrderType{
	OrderTypeLimit,
	OrderTypeMarket,
	OrderTypeLimitMaker,
	OrderTypeImmediateOrCancel,
	OrderTypeFillOrKill,
}

func ParseOrderType(s string) (OrderType, error) {
	t := OrderType(strings.ToUpper(s))
	for _, o := range orderTypes {
		if o == t {
			return t, nil
		}
	}

	return "", fmt.Errorf("invalid order type: %q", s)
}

// RequiresPrice returns true for the order types that are matched at a limit price.
func (t OrderType) RequiresPrice() bool {
	return t != OrderTypeMarket
}

type AccountType string

const (
	AccountTypeSpot AccountType = "SPOT"
)

var numOfDigitsOfUnixTimestamp = len(strconv.FormatInt(time.Now().Unix(), 10))

// Timestamp is a unix timestamp that accepts both second and millisecond
// resolution (as number or string) and marshals back in milliseconds.
type Timestamp time.Time

func NewTimestampFromMilliseconds(ms int64) Timestamp {
	return Timestamp(time.UnixMilli(ms))
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

func (t Timestamp) String() string {
	return time.Time(t).String()
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(time.Time(t).UnixMilli(), 10)), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	var str string
	switch vt := v.(type) {
	case nil:
		return nil

	case string:
		if vt == "" {
			*t = Timestamp(time.Time{})
			return nil
		}
		str = vt

	case float64:
		str = strconv.FormatFloat(vt, 'f', -1, 64)

	default:
		return fmt.Errorf("can not parse %T %+v as timestamp", vt, vt)
	}

	if idx := strings.Index(str, "."); idx >= 0 {
		str = str[:idx]
	}

	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return fmt.Errorf("can not parse %q as timestamp: %w", str, err)
	}

	if len(str) <= numOfDigitsOfUnixTimestamp {
		*t = Timestamp(time.Unix(n, 0))
	} else {
		*t = Timestamp(time.UnixMilli(n))
	}

	return nil
}
