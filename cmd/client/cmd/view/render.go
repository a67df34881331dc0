package view

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"

	"banker/internal/domain/account"
	"banker/internal/domain/admin"
	"banker/internal/domain/user"
)

const timeLayout = "2006-01-02 15:04:05"

func Identity(id user.Identity) {
	fmt.Printf("Пользователь: %s (id %d)\n", id.Subject, id.UserID)
	fmt.Printf("Роль:         %s\n", id.Role())
	if !id.ExpiresAt.IsZero() {
		fmt.Printf("Токен до:     %s UTC\n", id.ExpiresAt.UTC().Format(timeLayout))
	}
}

func Account(acc *account.Account) {
	if acc == nil {
		fmt.Println("Счет еще не открыт")
		return
	}
	fmt.Printf("Владелец: %s %s\n", acc.OwnerName, acc.FatherName)
	fmt.Printf("Телефон:  %s\n", acc.PhoneNumber)
	fmt.Printf("IBAN:     %s\n", acc.IBAN)
	fmt.Printf("Адрес:    %s\n", acc.CryptoAddress)
	fmt.Print("Баланс:   ")
	color.New(color.Bold).Println(acc.Balance.StringFixed(2))
}

func UserDashboard(snap *account.Snapshot) {
	Header("Дашборд")
	Account(snap.Account)

	fmt.Println()
	fmt.Println("Получатели:")
	if len(snap.Beneficiaries) == 0 {
		fmt.Println("  нет")
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Имя\tIBAN\tАдрес\t\n")
		for _, b := range snap.Beneficiaries {
			fmt.Fprintf(w, "  %s\t%s\t%s\t\n", b.Name, b.IBAN, b.Address)
		}
		w.Flush()
	}

	fmt.Println()
	fmt.Println("Последние операции:")
	Transactions(snap.RecentTransactions())
}

func Transactions(txs []account.Transaction) {
	if len(txs) == 0 {
		fmt.Println("  операций нет")
		return
	}

	red := color.New(color.FgRed).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Время\tТип\tСумма\tКонтрагент\t\n")
	for _, tx := range txs {
		amount := tx.Amount.StringFixed(2)
		if tx.Type == account.TxSend {
			amount = red("-" + amount)
		} else {
			amount = green("+" + amount)
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t\n",
			tx.Timestamp.UTC().Format(timeLayout),
			tx.Type,
			amount,
			tx.Counterparty(),
		)
	}
	w.Flush()
}

func AdminDashboard(snap *admin.Snapshot) {
	Header("Банк")
	fmt.Printf("Всего денег:            %s\n", snap.TotalMoney.StringFixed(2))
	fmt.Printf("Переведено за сегодня:  %s\n", snap.TotalTransferredToday.StringFixed(2))
	fmt.Println()

	if len(snap.Accounts) == 0 {
		fmt.Println("Счетов нет")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "ID\tВладелец\tIBAN\tТелефон\tБаланс\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t\n")
	for _, a := range snap.Accounts {
		fmt.Fprintf(w, "%d\t%s %s\t%s\t%s\t%s\t\n",
			a.ID, a.OwnerName, a.FatherName, a.IBAN, a.PhoneNumber, a.Balance.StringFixed(2))
	}
	w.Flush()
	fmt.Printf("\nВсего счетов: %d\n", len(snap.Accounts))
}
