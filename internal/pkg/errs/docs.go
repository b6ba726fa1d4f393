// Package errs provides the error types shared by the order assignment service.
//
// Each type follows the same shape:
//   - a sentinel error variable (e.g. ErrObjectNotFound) usable with errors.Is
//   - a struct carrying the details (e.g. ObjectNotFoundError) usable with errors.As
//   - constructors with and without a cause
//   - Unwrap returning the sentinel
//
// Available types:
//   - ObjectNotFoundError: lookup of an order, shop or stock item found nothing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a numeric value is outside its bounds
//   - ValueIsRequiredError: a required value is missing
//
// The HTTP adapter maps these, together with the domain sentinels, onto the
// error kinds returned to callers (InvalidInput, OrderNotFound, ShopNotFound).
package errs
