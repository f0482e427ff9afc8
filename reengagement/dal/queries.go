package dal

import (
	"fmt"

	"github.com/truegloryhair/commerce-reports/common"
)

const ordersTable = "orders"

const customerOrdersQueryTmpl = `
	SELECT
		email,
		DATE(processedAt) AS order_date,
		SAFE_CAST(currentTotalPriceSet_shopMoney_amount AS FLOAT64) AS order_amount,
		currentTotalPriceSet_shopMoney_amount IS NOT NULL AS has_amount
	FROM
		%s
	WHERE
		email IS NOT NULL
`

// GetCustomerOrdersQuery selects the date and amount of every order placed with an email.
func GetCustomerOrdersQuery() string {
	return fmt.Sprintf(customerOrdersQueryTmpl, common.TableID(ordersTable))
}
