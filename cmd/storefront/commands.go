package main

import (
	"errors"
	"fmt"
	"strconv"

	storeerr "github.com/RoyceAzure/lab/storefront/internal/errors"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/lab/storefront/internal/view"
	"github.com/spf13/cobra"
)

const renderWidth = 72

var (
	categoryParam string
	loginToken    string
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show the pending order",
	RunE: func(cmd *cobra.Command, args []string) error {
		// 未登入時導去登入, 不讀取訂單
		if !app.Identity.IsAuthenticated() {
			fmt.Fprintln(cmd.OutOrStdout(), view.LoginRequired)
			return nil
		}
		app.Session.Refresh(cmd.Context())
		renderCart(cmd)
		return nil
	},
}

var confirmCmd = &cobra.Command{
	Use:   "confirm",
	Short: "Confirm the pending order",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.Session.Confirm(cmd.Context())
		return notify(cmd, err, "Order confirmed successfully!", "Failed to confirm order")
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the pending order",
	RunE: func(cmd *cobra.Command, args []string) error {
		err := app.Session.Cancel(cmd.Context())
		return notify(cmd, err, "Order cancelled successfully!", "Failed to cancel order")
	},
}

var addCmd = &cobra.Command{
	Use:   "add <product-id>",
	Short: "Add a product to the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		err = app.Session.AddItem(cmd.Context(), id)
		return notify(cmd, err, "Item added to cart", "Failed to add item")
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <product-id>",
	Short: "Remove a product from the cart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseProductID(args[0])
		if err != nil {
			return err
		}
		err = app.Session.RemoveItem(cmd.Context(), id)
		return notify(cmd, err, "Item removed from cart", "Failed to remove item")
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List products, optionally scoped to a category",
	RunE: func(cmd *cobra.Command, args []string) error {
		app.Catalog.OnCategoryParamChanged(cmd.Context(), categoryParam)
		renderCatalog(cmd)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store a bearer token for the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Identity.Login(cmd.Context(), loginToken); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged in")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.Identity.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged out")
		return nil
	},
}

func init() {
	productsCmd.Flags().StringVar(&categoryParam, "category", "", "category id, empty for all products")
	loginCmd.Flags().StringVar(&loginToken, "token", "", "bearer token")
	_ = loginCmd.MarkFlagRequired("token")
}

func parseProductID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: product id %q", storeerr.ErrInvalidateParameter, arg)
	}
	return id, nil
}

// notify 操作結果提示, 成功後印出最新的購物車
func notify(cmd *cobra.Command, err error, success, failure string) error {
	out := cmd.OutOrStdout()
	if errors.Is(err, storeerr.ErrAuthRequired) {
		fmt.Fprintln(out, view.LoginRequired)
		return err
	}
	if err != nil {
		fmt.Fprintln(out, view.Notice(view.DefaultTheme, failure, err))
		return err
	}
	fmt.Fprintln(out, view.Notice(view.DefaultTheme, success, nil))
	renderCart(cmd)
	return nil
}

func renderCart(cmd *cobra.Command) {
	state := app.Session.State()
	summary := service.SummarizeOrder(state.Order, app.Cf.CartPlaceholderImageURL)
	fmt.Fprintln(cmd.OutOrStdout(), view.NewCartRenderer(view.DefaultTheme, renderWidth).Render(summary, state.Loading))
}

func renderCatalog(cmd *cobra.Command) {
	fmt.Fprintln(cmd.OutOrStdout(), view.NewCatalogRenderer(view.DefaultTheme, renderWidth).Render(app.Catalog.Presentation()))
}
