package domain

import "encoding/json"

// RentalOrderVO is a rental order.
type RentalOrderVO struct {
	ID             int64       `json:"id,omitempty"`
	OrderNo        string      `json:"orderNo,omitempty"`
	UserID         int64       `json:"userId,omitempty"`
	UserName       string      `json:"userName,omitempty"`
	CarID          int64       `json:"carId,omitempty"`
	CarName        string      `json:"carName,omitempty"`
	StartTime      string      `json:"startTime,omitempty"`
	EndTime        string      `json:"endTime,omitempty"`
	PickupCityID   int64       `json:"pickupCityId,omitempty"`
	PickupCityName string      `json:"pickupCityName,omitempty"`
	ReturnCityID   int64       `json:"returnCityId,omitempty"`
	ReturnCityName string      `json:"returnCityName,omitempty"`
	PickupLocation string      `json:"pickupLocation,omitempty"`
	ReturnLocation string      `json:"returnLocation,omitempty"`
	RentalDays     int         `json:"rentalDays,omitempty"`
	DailyPrice     json.Number `json:"dailyPrice,omitempty"`
	Amount         json.Number `json:"amount,omitempty"`
	Deposit        json.Number `json:"deposit,omitempty"`
	PaidAmount     json.Number `json:"paidAmount,omitempty"`
	PaymentStatus  int         `json:"paymentStatus,omitempty"`
	OrderStatus    int         `json:"orderStatus,omitempty"`
	AuditStatus    int         `json:"auditStatus,omitempty"`
	AuditUserID    int64       `json:"auditUserId,omitempty"`
	AuditTime      string      `json:"auditTime,omitempty"`
	AuditRemark    string      `json:"auditRemark,omitempty"`
	CancelReason   string      `json:"cancelReason,omitempty"`
	CreatedAt      string      `json:"createdAt,omitempty"`
	UpdatedAt      string      `json:"updatedAt,omitempty"`
}

// RentalOrderAuditVO is one audit record attached to an order.
type RentalOrderAuditVO struct {
	ID            int64  `json:"id,omitempty"`
	AuditResult   int    `json:"auditResult,omitempty"`
	AuditComment  string `json:"auditComment,omitempty"`
	AuditUserID   int64  `json:"auditUserId,omitempty"`
	AuditUserName string `json:"auditUserName,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// RentalOrderDetailVO is an order with its audit trail.
type RentalOrderDetailVO struct {
	RentalOrderVO
	Audits []RentalOrderAuditVO `json:"audits,omitempty"`
}

// RentalOrderQuery filters the admin order listing.
type RentalOrderQuery struct {
	OrderNo       string `json:"orderNo,omitempty" query:"orderNo" url:"orderNo,omitempty"`
	UserID        *int64 `json:"userId,omitempty" query:"userId" url:"userId,omitempty"`
	CarID         *int64 `json:"carId,omitempty" query:"carId" url:"carId,omitempty"`
	PaymentStatus *int   `json:"paymentStatus,omitempty" query:"paymentStatus" url:"paymentStatus,omitempty"`
	OrderStatus   *int   `json:"orderStatus,omitempty" query:"orderStatus" url:"orderStatus,omitempty"`
	AuditStatus   *int   `json:"auditStatus,omitempty" query:"auditStatus" url:"auditStatus,omitempty"`
	PickupCityID  *int64 `json:"pickupCityId,omitempty" query:"pickupCityId" url:"pickupCityId,omitempty"`
	ReturnCityID  *int64 `json:"returnCityId,omitempty" query:"returnCityId" url:"returnCityId,omitempty"`
	StartTime     string `json:"startTime,omitempty" query:"startTime" url:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty" query:"endTime" url:"endTime,omitempty"`
	PageQuery
}

// RentalOrderUpdateRequest patches an order from the admin console.
type RentalOrderUpdateRequest struct {
	StartTime      *string  `json:"startTime,omitempty"`
	EndTime        *string  `json:"endTime,omitempty"`
	RentalDays     *int     `json:"rentalDays,omitempty"`
	DailyPrice     *float64 `json:"dailyPrice,omitempty"`
	Amount         *float64 `json:"amount,omitempty"`
	Deposit        *float64 `json:"deposit,omitempty"`
	PaidAmount     *float64 `json:"paidAmount,omitempty"`
	PaymentStatus  *int     `json:"paymentStatus,omitempty"`
	OrderStatus    *int     `json:"orderStatus,omitempty"`
	PickupCityID   *int64   `json:"pickupCityId,omitempty"`
	ReturnCityID   *int64   `json:"returnCityId,omitempty"`
	PickupLocation *string  `json:"pickupLocation,omitempty"`
	ReturnLocation *string  `json:"returnLocation,omitempty"`
	CancelReason   *string  `json:"cancelReason,omitempty"`
}

// RentalOrderAuditRequest records an audit decision on an order.
type RentalOrderAuditRequest struct {
	AuditResult  int    `json:"auditResult"`
	AuditComment string `json:"auditComment,omitempty"`
}

// PortalOrderQuery filters the signed-in customer's orders.
type PortalOrderQuery struct {
	OrderNo       string `json:"orderNo,omitempty" query:"orderNo" url:"orderNo,omitempty"`
	OrderStatus   *int   `json:"orderStatus,omitempty" query:"orderStatus" url:"orderStatus,omitempty"`
	PaymentStatus *int   `json:"paymentStatus,omitempty" query:"paymentStatus" url:"paymentStatus,omitempty"`
	AuditStatus   *int   `json:"auditStatus,omitempty" query:"auditStatus" url:"auditStatus,omitempty"`
	StartTime     string `json:"startTime,omitempty" query:"startTime" url:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty" query:"endTime" url:"endTime,omitempty"`
	PageQuery
}

// RentalOrderCreateRequest places an order from the portal.
type RentalOrderCreateRequest struct {
	CarID          int64  `json:"carId"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
	RentalDays     int    `json:"rentalDays"`
	PickupCityID   int64  `json:"pickupCityId"`
	PickupLocation string `json:"pickupLocation"`
	ReturnCityID   int64  `json:"returnCityId"`
	ReturnLocation string `json:"returnLocation,omitempty"`
}

// RentalOrderCancelRequest cancels an order.
type RentalOrderCancelRequest struct {
	CancelReason string `json:"cancelReason"`
}

// RentalOrderPayRequest pays an order.
type RentalOrderPayRequest struct {
	PaymentChannel string   `json:"paymentChannel"`
	PayAmount      *float64 `json:"payAmount,omitempty"`
	OutTradeNo     string   `json:"outTradeNo,omitempty"`
}
