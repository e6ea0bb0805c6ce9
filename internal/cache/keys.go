package cache

import "fmt"

const MenuFullKey = PrefixMenus + "full"

func MenuListKey(skip, limit int) string {
	return fmt.Sprintf("%slist:%d:%d", PrefixMenus, skip, limit)
}

func MenuItemKey(menuID string) string {
	return PrefixMenus + "item:" + menuID
}

func SubMenuListKey(menuID string, skip, limit int) string {
	return fmt.Sprintf("%slist:%s:%d:%d", PrefixSubMenus, menuID, skip, limit)
}

func SubMenuItemKey(menuID, submenuID string) string {
	return PrefixSubMenus + "item:" + menuID + ":" + submenuID
}

func DishListKey(submenuID string, skip, limit int) string {
	return fmt.Sprintf("%slist:%s:%d:%d", PrefixDishes, submenuID, skip, limit)
}

func DishItemKey(submenuID, dishID string) string {
	return PrefixDishes + "item:" + submenuID + ":" + dishID
}
