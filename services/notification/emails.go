package notification

import (
	"fmt"
	"html"
	"time"

	"movebot/models"
)

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return html.EscapeString(v)
}

func bookingManagerSubject(data models.BookingData) string {
	name := data.Name
	if name == "" {
		name = "Unknown"
	}
	return "New Booking Request - " + name
}

func bookingManagerBody(data models.BookingData) string {
	distance := "N/A"
	if data.DistanceMiles > 0 {
		distance = fmt.Sprintf("%.1f", data.DistanceMiles)
	}
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif; line-height: 1.6;">
		<h2 style="color: #2c3e50;">New Booking Request</h2>

		<h3>Customer Information:</h3>
		<ul>
			<li><strong>Name:</strong> %s</li>
			<li><strong>Phone:</strong> %s</li>
			<li><strong>Email:</strong> %s</li>
		</ul>

		<h3>Move Details:</h3>
		<ul>
			<li><strong>Pickup Address:</strong> %s</li>
			<li><strong>Drop-off Address:</strong> %s</li>
			<li><strong>Move Date:</strong> %s</li>
			<li><strong>Preferred Time:</strong> %s</li>
			<li><strong>Home Size:</strong> %s</li>
			<li><strong>Move Type:</strong> %s</li>
			<li><strong>Distance:</strong> %s miles</li>
		</ul>

		<h3>Additional Details:</h3>
		<ul>
			<li><strong>Crew Size Requested:</strong> %s</li>
			<li><strong>Special Items:</strong> %s</li>
			<li><strong>Packing Needs:</strong> %s</li>
			<li><strong>Stairs/Elevator/Parking:</strong> %s</li>
		</ul>

		<h3>Estimated Cost:</h3>
		<p style="font-size: 18px; color: #27ae60;"><strong>%s</strong></p>

		<p style="margin-top: 30px;">Please confirm this booking with the customer.</p>
	</body>
	</html>
	`,
		orNA(data.Name), orNA(data.Phone), orNA(data.Email),
		orNA(data.PickupAddress), orNA(data.DropAddress), orNA(data.MoveDate),
		orNA(data.TimePreference), orNA(data.HomeSize), orNA(data.MoveType), distance,
		orNA(data.CrewSize), orNA(data.SpecialItems), orNA(data.PackingNeeds), orNA(data.StairsElevator),
		orNA(data.EstimatedCost))
}

func customerConfirmationBody(data models.BookingData, companyPhone string) string {
	name := data.Name
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf(`
	<html><body style="font-family: Arial, sans-serif; line-height: 1.6;">
	<h2 style="color:#2c3e50;">USF Moving Booking</h2>
	<p>Hi %s, thanks for your details. Our manager will reach out to finalize your booking.</p>
	<ul>
	  <li><strong>From:</strong> %s</li>
	  <li><strong>To:</strong> %s</li>
	  <li><strong>Date:</strong> %s</li>
	  <li><strong>Estimate:</strong> %s</li>
	  <li><strong>Crew:</strong> %s</li>
	</ul>
	<p>Questions? Call %s.</p>
	</body></html>
	`,
		html.EscapeString(name), orNA(data.PickupAddress), orNA(data.DropAddress),
		orNA(data.MoveDate), orNA(data.EstimatedCost), orNA(data.CrewSize),
		html.EscapeString(companyPhone))
}

func callRequestBody(name, phone, timing, notes string) string {
	extra := ""
	if notes != "" {
		extra = fmt.Sprintf("<p><strong>Notes:</strong> %s</p>", html.EscapeString(notes))
	}
	return fmt.Sprintf(`
	<html>
	<body style="font-family: Arial, sans-serif;">
		<h2>New Call Request</h2>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Phone:</strong> %s</p>
		<p><strong>Timing:</strong> %s</p>
		%s
		<p><strong>Requested At:</strong> %s</p>
	</body>
	</html>
	`, orNA(name), orNA(phone), orNA(timing), extra, time.Now().Format("2006-01-02 15:04:05"))
}
