// Package guard provides guard clauses: small, generic, side-effect-free
// checks that validate function arguments at the top of constructors and
// handlers and either hand the value back unchanged or report why it was
// rejected.
//
// Every rule is a package-level function of the form
//
//	func Rule[T](field string, value T, <bounds...>, opts ...Option) (T, error)
//
// On success the input is returned as is. On failure the zero value is
// returned together with a *Error. Go cannot capture the caller's argument
// expression, so the parameter name is passed explicitly; an empty name is
// reported as DefaultParam.
//
// # Rules
//
// Files group rules by the kind of value they inspect:
//   - presence_rules.go  : Null, NullValue, Default, DefaultStruct
//   - string_rules.go    : NullOrWhiteSpace, NullOrEmpty, InvalidFormat, InvalidLength
//   - numeric_rules.go   : Negative, Zero, NegativeOrZero, Positive
//   - comparable_rules.go: OutOfRange, GreaterThan, GreaterThanOrEqualTo, LessThan, LessThanOrEqualTo
//   - collection_rules.go: NullOrEmptySlice, NullOrEmptyMap, NullOrEmptySeq, NotOneOf
//   - enum_rules.go      : NotInEnum
//   - condition.go       : Condition
//
// Numeric and ordering rules come in two flavours: the plain form accepts
// built-in numbers (and strings, where ordering makes sense), the Cmp form
// accepts any type with a Compare(T) int method such as decimal.Decimal or
// time.Time. Sign rules compare against the additive identity of the value's
// representation; see zeroOf for the mapping.
//
// Rule names describe what is rejected, not what is required: Positive fails
// for values greater than zero and GreaterThan fails for values above the
// ceiling.
//
// # Usage
//
//	func NewProduct(id uuid.UUID, name string, price decimal.Decimal) (*Product, error) {
//	    if _, err := guard.Default("id", id); err != nil {
//	        return nil, err
//	    }
//	    name, err := guard.NullOrWhiteSpace("name", name)
//	    if err != nil {
//	        return nil, err
//	    }
//	    price, err = guard.NegativeOrZeroCmp("price", price)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &Product{ID: id, Name: name, Price: price}, nil
//	}
//
// Use Collect with Err to report every failure at once instead of stopping
// at the first one.
//
// # Error Handling
//
// Failures are classified by Kind and matched with errors.Is against
// ErrNull, ErrRange and ErrArgument. ErrArgument matches every guard
// failure, so a caller that only needs "bad input" checks one sentinel.
// Range failures carry the offending value in Error.Value and in the
// message returned by Error().
//
// The package holds no state; all rules are safe for concurrent use.
package guard
