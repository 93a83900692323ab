package delivery

import "fmt"

// Response texts are part of the public contract. The update 404 uses a colon
// where the others use a dash; clients match on it, so keep both.
const (
	MsgInvalidCategory   = "Invalid category"
	MsgInvalidCategoryID = "Invalid category ID format"
	MsgInternalError     = "Internal server error"
)

func NotFoundMessage(id int) string {
	return fmt.Sprintf("Category not found with ID - %d", id)
}

func UpdateNotFoundMessage(id int) string {
	return fmt.Sprintf("Category not found with ID: %d", id)
}

func RetrieveFailedMessage(id int) string {
	return fmt.Sprintf("Failed to retrieve category with ID - %d", id)
}

func UpdateFailedMessage(id int) string {
	return fmt.Sprintf("Failed to update category with ID - %d", id)
}

func DeleteFailedMessage(id int) string {
	return fmt.Sprintf("Failed to delete category with ID - %d", id)
}

func DeletedMessage(id int) string {
	return fmt.Sprintf("Deleted Category with ID - %d", id)
}
