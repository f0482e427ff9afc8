package dal

import (
	"fmt"

	"github.com/truegloryhair/commerce-reports/common"
)

const abandonedCheckoutsTable = "abandoned_checkouts"

const abandonedCheckoutsQueryTmpl = `
	SELECT
		id AS abandoned_checkout_id,
		abandonedCheckoutUrl,
		CAST(createdAt AS STRING) AS createdAt,
		CAST(updatedAt AS STRING) AS updatedAt,
		CAST(completedAt AS STRING) AS completedAt,
		CAST(customer_id AS STRING) AS customer_id,
		customer_firstName,
		customer_lastName,
		customer_email,
		CAST(lineItems_edges AS STRING) AS lineItems_edges,
		SAFE_CAST(subtotalPriceSet_shopMoney_amount AS FLOAT64) AS subtotal_amount,
		SAFE_CAST(totalPriceSet_shopMoney_amount AS FLOAT64) AS total_amount
	FROM
		%s
`

// GetAbandonedCheckoutsQuery selects every abandoned checkout of the store.
func GetAbandonedCheckoutsQuery() string {
	return fmt.Sprintf(abandonedCheckoutsQueryTmpl, common.TableID(abandonedCheckoutsTable))
}
