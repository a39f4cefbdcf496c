package domain

type Permission string

const (
	PermCreateQuote       Permission = "create quote"
	PermEditQuote         Permission = "edit quote"
	PermDeleteQuote       Permission = "delete quote"
	PermViewAllQuotes     Permission = "view all quotes"
	PermViewMyQuotes      Permission = "view my quotes"
	PermValidateQuote     Permission = "validate quote"
	PermRestoreQuote      Permission = "restore quote"
	PermCreateCategories  Permission = "create categories"
	PermEditCategories    Permission = "edit categories"
	PermDeleteCategories  Permission = "delete categories"
	PermViewAllCategories Permission = "view all categories"
	PermCreateTags        Permission = "create tags"
	PermEditTags          Permission = "edit tags"
	PermDeleteTags        Permission = "delete tags"
	PermViewAllTags       Permission = "view all tags"
	PermLikeQuote         Permission = "like quote"
	PermDislikeQuote      Permission = "dislike quote"
	PermAddFavorite       Permission = "add to favorites"
	PermDeleteFavorite    Permission = "delete from favorites"
)

var allPermissions = []Permission{
	PermCreateQuote,
	PermEditQuote,
	PermDeleteQuote,
	PermViewAllQuotes,
	PermViewMyQuotes,
	PermValidateQuote,
	PermRestoreQuote,
	PermCreateCategories,
	PermEditCategories,
	PermDeleteCategories,
	PermViewAllCategories,
	PermCreateTags,
	PermEditTags,
	PermDeleteTags,
	PermViewAllTags,
	PermLikeQuote,
	PermDislikeQuote,
	PermAddFavorite,
	PermDeleteFavorite,
}

var authorPermissions = []Permission{
	PermCreateQuote,
	PermEditQuote,
	PermDeleteQuote,
	PermViewAllQuotes,
	PermViewMyQuotes,
	PermViewAllCategories,
	PermViewAllTags,
	PermLikeQuote,
	PermDislikeQuote,
	PermAddFavorite,
	PermDeleteFavorite,
}

// Permissions returns the permissions granted to a role. Unknown roles get none.
func Permissions(role UserRole) []Permission {
	var src []Permission
	switch role {
	case RoleAdmin:
		src = allPermissions
	case RoleAuthor:
		src = authorPermissions
	}
	out := make([]Permission, len(src))
	copy(out, src)
	return out
}

func HasPermission(role UserRole, p Permission) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleAuthor:
		for _, granted := range authorPermissions {
			if granted == p {
				return true
			}
		}
	}
	return false
}
