// Package response builds handler.Response values for JSON, plain text and
// downloadable files, and converts errors into structured HTTP errors.
//
//	func lookup(ctx handler.Context) handler.Response {
//		text, err := c.Lookup(key, locale)
//		if err != nil {
//			return response.Error(response.ErrNotFound.WithError(err))
//		}
//		return response.JSON(map[string]string{"text": text})
//	}
//
// Errors returned by a response reach the router's error handler.
// JSONErrorHandler renders them as {"code": ..., "message": ...}, taking the
// status from HTTPError or from any error with a StatusCode() int method.
//
// Write buffers the body before sending so rendering failures can still
// produce a proper error status:
//
//	return response.Write("text/csv; charset=utf-8", "general.csv", func(w io.Writer) error {
//		return export.WriteCSV(w, c)
//	})
package response
