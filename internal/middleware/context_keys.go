package middleware

import "github.com/gin-gonic/gin"

// employeeIDKey is the key used to store the authenticated employee's ID in
// the request context. Using a custom type prevents collisions.
const employeeIDKey = contextKey("employeeID")

// roleKey is the key used to store the authenticated employee's role.
const roleKey = contextKey("role")

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the
// request context. It returns the ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	employeeID, ok := c.Request.Context().Value(employeeIDKey).(string)
	if !ok || employeeID == "" {
		return "", false
	}
	return employeeID, true
}

// GetRoleFromContext retrieves the authenticated employee's role from the
// request context.
func GetRoleFromContext(c *gin.Context) (string, bool) {
	role, ok := c.Request.Context().Value(roleKey).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}
