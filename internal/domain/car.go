package domain

import "encoding/json"

// CarInfoVO is a rentable car as returned by both the admin and portal endpoints.
type CarInfoVO struct {
	ID          int64       `json:"id,omitempty"`
	CarCode     string      `json:"carCode,omitempty"`
	CarName     string      `json:"carName,omitempty"`
	BrandID     int64       `json:"brandId,omitempty"`
	BrandName   string      `json:"brandName,omitempty"`
	TypeID      int64       `json:"typeId,omitempty"`
	TypeName    string      `json:"typeName,omitempty"`
	CityID      int64       `json:"cityId,omitempty"`
	CityName    string      `json:"cityName,omitempty"`
	CoverImage  string      `json:"coverImage,omitempty"`
	DailyPrice  json.Number `json:"dailyPrice,omitempty"`
	Deposit     json.Number `json:"deposit,omitempty"`
	SeatCount   int         `json:"seatCount,omitempty"`
	GearboxType int         `json:"gearboxType,omitempty"`
	FuelType    string      `json:"fuelType,omitempty"`
	Mileage     int64       `json:"mileage,omitempty"`
	Stock       int         `json:"stock,omitempty"`
	RentedCount int         `json:"rentedCount,omitempty"`
	ViewCount   int64       `json:"viewCount,omitempty"`
	Status      int         `json:"status,omitempty"`
	AuditStatus int         `json:"auditStatus,omitempty"`
	Description string      `json:"description,omitempty"`
	CreatedBy   int64       `json:"createdBy,omitempty"`
	UpdatedBy   int64       `json:"updatedBy,omitempty"`
	CreatedAt   string      `json:"createdAt,omitempty"`
	UpdatedAt   string      `json:"updatedAt,omitempty"`
}

// CarInfoQuery filters the admin car listing.
type CarInfoQuery struct {
	Keyword       string   `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	BrandID       *int64   `json:"brandId,omitempty" query:"brandId" url:"brandId,omitempty"`
	TypeID        *int64   `json:"typeId,omitempty" query:"typeId" url:"typeId,omitempty"`
	CityID        *int64   `json:"cityId,omitempty" query:"cityId" url:"cityId,omitempty"`
	Status        *int     `json:"status,omitempty" query:"status" url:"status,omitempty"`
	AuditStatus   *int     `json:"auditStatus,omitempty" query:"auditStatus" url:"auditStatus,omitempty"`
	MinDailyPrice *float64 `json:"minDailyPrice,omitempty" query:"minDailyPrice" url:"minDailyPrice,omitempty"`
	MaxDailyPrice *float64 `json:"maxDailyPrice,omitempty" query:"maxDailyPrice" url:"maxDailyPrice,omitempty"`
	MinDeposit    *float64 `json:"minDeposit,omitempty" query:"minDeposit" url:"minDeposit,omitempty"`
	MaxDeposit    *float64 `json:"maxDeposit,omitempty" query:"maxDeposit" url:"maxDeposit,omitempty"`
	SeatCount     *int     `json:"seatCount,omitempty" query:"seatCount" url:"seatCount,omitempty"`
	GearboxType   *int     `json:"gearboxType,omitempty" query:"gearboxType" url:"gearboxType,omitempty"`
	FuelType      string   `json:"fuelType,omitempty" query:"fuelType" url:"fuelType,omitempty"`
	MinStock      *int     `json:"minStock,omitempty" query:"minStock" url:"minStock,omitempty"`
	MaxStock      *int     `json:"maxStock,omitempty" query:"maxStock" url:"maxStock,omitempty"`
	MinMileage    *int64   `json:"minMileage,omitempty" query:"minMileage" url:"minMileage,omitempty"`
	MaxMileage    *int64   `json:"maxMileage,omitempty" query:"maxMileage" url:"maxMileage,omitempty"`
	PageQuery
}

// CarInfoCreateRequest creates a car.
type CarInfoCreateRequest struct {
	CarCode     string   `json:"carCode"`
	CarName     string   `json:"carName"`
	BrandID     int64    `json:"brandId"`
	TypeID      int64    `json:"typeId"`
	CityID      int64    `json:"cityId"`
	CoverImage  string   `json:"coverImage,omitempty"`
	DailyPrice  float64  `json:"dailyPrice"`
	Deposit     *float64 `json:"deposit,omitempty"`
	SeatCount   int      `json:"seatCount"`
	GearboxType *int     `json:"gearboxType,omitempty"`
	FuelType    string   `json:"fuelType,omitempty"`
	Mileage     *int64   `json:"mileage,omitempty"`
	Stock       int      `json:"stock"`
	Status      *int     `json:"status,omitempty"`
	AuditStatus *int     `json:"auditStatus,omitempty"`
	Description string   `json:"description,omitempty"`
}

// CarInfoUpdateRequest patches a car; nil fields are left unchanged.
type CarInfoUpdateRequest struct {
	CarCode     *string  `json:"carCode,omitempty"`
	CarName     *string  `json:"carName,omitempty"`
	BrandID     *int64   `json:"brandId,omitempty"`
	TypeID      *int64   `json:"typeId,omitempty"`
	CityID      *int64   `json:"cityId,omitempty"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	DailyPrice  *float64 `json:"dailyPrice,omitempty"`
	Deposit     *float64 `json:"deposit,omitempty"`
	SeatCount   *int     `json:"seatCount,omitempty"`
	GearboxType *int     `json:"gearboxType,omitempty"`
	FuelType    *string  `json:"fuelType,omitempty"`
	Mileage     *int64   `json:"mileage,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Status      *int     `json:"status,omitempty"`
	AuditStatus *int     `json:"auditStatus,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// CarInfoAuditRequest records an audit decision on a car.
type CarInfoAuditRequest struct {
	AuditStatus int `json:"auditStatus"`
}

// PortalCarQuery filters the public car market.
type PortalCarQuery struct {
	Keyword       string   `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	CityID        *int64   `json:"cityId,omitempty" query:"cityId" url:"cityId,omitempty"`
	BrandID       *int64   `json:"brandId,omitempty" query:"brandId" url:"brandId,omitempty"`
	TypeID        *int64   `json:"typeId,omitempty" query:"typeId" url:"typeId,omitempty"`
	MinDailyPrice *float64 `json:"minDailyPrice,omitempty" query:"minDailyPrice" url:"minDailyPrice,omitempty"`
	MaxDailyPrice *float64 `json:"maxDailyPrice,omitempty" query:"maxDailyPrice" url:"maxDailyPrice,omitempty"`
	SeatCount     *int     `json:"seatCount,omitempty" query:"seatCount" url:"seatCount,omitempty"`
	GearboxType   *int     `json:"gearboxType,omitempty" query:"gearboxType" url:"gearboxType,omitempty"`
	FuelType      string   `json:"fuelType,omitempty" query:"fuelType" url:"fuelType,omitempty"`
	PageQuery
}

// CarBrandVO is a car brand.
type CarBrandVO struct {
	ID          int64  `json:"id,omitempty"`
	BrandName   string `json:"brandName,omitempty"`
	BrandCode   string `json:"brandCode,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Country     string `json:"country,omitempty"`
	SortOrder   int    `json:"sortOrder,omitempty"`
	Status      int    `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CarBrandQuery filters brands.
type CarBrandQuery struct {
	Keyword string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	Status  *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	PageQuery
}

// CarBrandCreateRequest creates a brand.
type CarBrandCreateRequest struct {
	BrandName   string `json:"brandName"`
	BrandCode   string `json:"brandCode"`
	LogoURL     string `json:"logoUrl,omitempty"`
	Country     string `json:"country,omitempty"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
	Status      *int   `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// CarBrandUpdateRequest patches a brand.
type CarBrandUpdateRequest struct {
	BrandName   *string `json:"brandName,omitempty"`
	BrandCode   *string `json:"brandCode,omitempty"`
	LogoURL     *string `json:"logoUrl,omitempty"`
	Country     *string `json:"country,omitempty"`
	SortOrder   *int    `json:"sortOrder,omitempty"`
	Status      *int    `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CarTypeVO is a vehicle category.
type CarTypeVO struct {
	ID          int64  `json:"id,omitempty"`
	TypeName    string `json:"typeName,omitempty"`
	TypeCode    string `json:"typeCode,omitempty"`
	SortOrder   int    `json:"sortOrder,omitempty"`
	Status      int    `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// CarTypeQuery filters car types.
type CarTypeQuery struct {
	Keyword string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	Status  *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	PageQuery
}

// CarTypeCreateRequest creates a car type.
type CarTypeCreateRequest struct {
	TypeName    string `json:"typeName"`
	TypeCode    string `json:"typeCode"`
	SortOrder   *int   `json:"sortOrder,omitempty"`
	Status      *int   `json:"status,omitempty"`
	Description string `json:"description,omitempty"`
}

// CarTypeUpdateRequest patches a car type.
type CarTypeUpdateRequest struct {
	TypeName    *string `json:"typeName,omitempty"`
	TypeCode    *string `json:"typeCode,omitempty"`
	SortOrder   *int    `json:"sortOrder,omitempty"`
	Status      *int    `json:"status,omitempty"`
	Description *string `json:"description,omitempty"`
}

// BaseCityVO is a pickup/return city.
type BaseCityVO struct {
	ID           int64  `json:"id,omitempty"`
	CityName     string `json:"cityName,omitempty"`
	CityCode     string `json:"cityCode,omitempty"`
	ProvinceName string `json:"provinceName,omitempty"`
	Status       int    `json:"status,omitempty"`
	SortOrder    int    `json:"sortOrder,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// CityQuery filters cities.
type CityQuery struct {
	Keyword      string `json:"keyword,omitempty" query:"keyword" url:"keyword,omitempty"`
	ProvinceName string `json:"provinceName,omitempty" query:"provinceName" url:"provinceName,omitempty"`
	Status       *int   `json:"status,omitempty" query:"status" url:"status,omitempty"`
	PageQuery
}

// CityCreateRequest creates a city.
type CityCreateRequest struct {
	CityName     string `json:"cityName"`
	CityCode     string `json:"cityCode,omitempty"`
	ProvinceName string `json:"provinceName,omitempty"`
	Status       *int   `json:"status,omitempty"`
	SortOrder    *int   `json:"sortOrder,omitempty"`
}

// CityUpdateRequest patches a city.
type CityUpdateRequest struct {
	CityName     *string `json:"cityName,omitempty"`
	CityCode     *string `json:"cityCode,omitempty"`
	ProvinceName *string `json:"provinceName,omitempty"`
	Status       *int    `json:"status,omitempty"`
	SortOrder    *int    `json:"sortOrder,omitempty"`
}

// StorageFileVO describes an uploaded object.
type StorageFileVO struct {
	Bucket    string `json:"bucket,omitempty"`
	ObjectKey string `json:"objectKey,omitempty"`
	URL       string `json:"url,omitempty"`
}
